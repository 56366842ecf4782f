package requestresponse

import "crm-web-server/internal/model"

// CreateShareLinkRequest : POST /api/sharing/create
type CreateShareLinkRequest struct {
	CustomerID     string                 `json:"customerId" validate:"required" example:"3f1c2a9e-5d7b-4c1e-9a8f-0b6d2e4c7a11"`
	ExpiresInHours int                    `json:"expiresInHours" validate:"required,min=1" example:"24"`
	MaxAccess      *int                   `json:"maxAccess,omitempty" validate:"omitempty,min=1" example:"3"`
	Permissions    model.SharePermissions `json:"permissions"`
	DocumentIDs    []string               `json:"documentIds" validate:"dive,required"`
}

func (r CreateShareLinkRequest) ToSpec() model.ShareLinkSpec {
	return model.ShareLinkSpec{
		CustomerID:     r.CustomerID,
		ExpiresInHours: r.ExpiresInHours,
		MaxAccess:      r.MaxAccess,
		Permissions:    r.Permissions,
		DocumentIDs:    r.DocumentIDs,
	}
}

// SignedURLRequest : POST /api/sharing/document/signed-url, expiresIn в секундах
type SignedURLRequest struct {
	FilePath  string `json:"filePath" validate:"required" example:"12345678901/5b1f.pdf"`
	ExpiresIn int    `json:"expiresIn,omitempty" validate:"omitempty,min=1,max=604800" example:"3600"`
}

// SignedURLResponse : подписанная ссылка
type SignedURLResponse struct {
	SignedURL string `json:"signedUrl" example:"https://storage.example.com/object/sign/..."`
	ExpiresIn int    `json:"expiresIn" example:"3600"`
}

// ShareLinkListResponse : ссылки текущего пользователя
type ShareLinkListResponse struct {
	Links []*model.ShareableLink `json:"links"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// AccessResponse : результат POST /api/sharing/{linkId}/access
type AccessResponse struct {
	AccessCount   int   `json:"accessCount" example:"1"`
	TimeRemaining int64 `json:"timeRemaining" example:"3599"`
}
