package requestresponse

import "crm-web-server/internal/model"

// CreateUploadLinkRequest : POST /api/customer-upload/create
type CreateUploadLinkRequest struct {
	CustomerID           string   `json:"customerId" validate:"required" example:"3f1c2a9e-5d7b-4c1e-9a8f-0b6d2e4c7a11"`
	ExpiresInHours       int      `json:"expiresInHours" validate:"required,min=1" example:"48"`
	MaxAccess            *int     `json:"maxAccess,omitempty" validate:"omitempty,min=1" example:"5"`
	AllowedDocumentTypes []string `json:"allowedDocumentTypes" validate:"required,min=1,dive,required" example:"application/pdf,image/jpeg"`
	MaxFileSize          int64    `json:"maxFileSize" validate:"required,min=1" example:"10485760"`
	MaxFiles             int      `json:"maxFiles" validate:"required,min=1" example:"5"`
}

func (r CreateUploadLinkRequest) ToSpec() model.UploadLinkSpec {
	return model.UploadLinkSpec{
		CustomerID:           r.CustomerID,
		ExpiresInHours:       r.ExpiresInHours,
		MaxAccess:            r.MaxAccess,
		AllowedDocumentTypes: r.AllowedDocumentTypes,
		MaxFileSize:          r.MaxFileSize,
		MaxFiles:             r.MaxFiles,
	}
}

// UploadLinkResponse : ссылка на загрузку и оставшееся время в секундах
type UploadLinkResponse struct {
	Link          *model.CustomerUploadLink `json:"link"`
	TimeRemaining int64                     `json:"timeRemaining" example:"172799"`
}

// UploadLinkListResponse : ссылки на загрузку текущего пользователя
type UploadLinkListResponse struct {
	Links []*model.CustomerUploadLink `json:"links"`
	Page  int                         `json:"page"`
	Limit int                         `json:"limit"`
}
