package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@crm.com.br"`
	Password string `json:"password" validate:"required" example:"senha1234"`
}

// TokensResponse : пара токенов
type TokensResponse struct {
	AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refreshToken" example:"sfuqwejqjoiu93e29"`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	UserUUID string `json:"userUuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	IsAdmin  bool   `json:"isAdmin" example:"false"`
}

// RefreshTokenRequest : запрос на обновление пары токенов
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required" example:"sfuqwejqjoiu93e29"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	RefreshTokenUUID string `json:"refreshTokenUuid" example:"qwdj1q4o34u34ih759ou1"`
	Revoked          bool   `json:"revoked" example:"true"`
}
