package requestresponse

import "crm-web-server/internal/model"

// RegisterRequest : тело запроса регистрации сотрудника
type RegisterRequest struct {
	Token    string `json:"token" validate:"required" example:"fixed_admin_token"`
	Email    string `json:"email" validate:"required,email" example:"ana@crm.com.br"`
	Name     string `json:"name" validate:"required,max=200" example:"Ana Lima"`
	Password string `json:"password" validate:"required,min=8" example:"senha1234"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"link expired or not found"`
}

// UpdatePasswordRequest : тело запроса
type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8" example:"novasenha1"`
}

// UpdatePasswordResponse : успешный ответ
type UpdatePasswordResponse struct {
	Updated bool `json:"updated" example:"true"`
}

// ListUsersResponse : страница пользователей
type ListUsersResponse struct {
	Users      []*model.User `json:"users"`
	NextCursor string        `json:"nextCursor,omitempty"`
}
