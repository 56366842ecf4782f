package ports

import (
	"context"

	"crm-web-server/internal/model"

	"github.com/jmoiron/sqlx"
)

// LeadRepository : SQL слой заявок
type LeadRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, lead *model.Lead) error
	GetByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Lead, error)
	List(ctx context.Context, exec sqlx.ExtContext, filter model.LeadFilter, page, limit int) ([]*model.Lead, error)
	UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id string, status model.LeadStatus) error
	MarkConverted(ctx context.Context, exec sqlx.ExtContext, id, customerID string) error
	AppendDocument(ctx context.Context, exec sqlx.ExtContext, id string, document model.Document) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id string) error
}

type LeadService interface {
	Submit(ctx context.Context, lead *model.Lead) (*model.Lead, error)
	Get(ctx context.Context, id string) (*model.Lead, error)
	List(ctx context.Context, filter model.LeadFilter, page, limit int) ([]*model.Lead, error)
	UpdateStatus(ctx context.Context, id string, status model.LeadStatus) error
	Delete(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, id string, file *model.UploadedFile) (*model.Document, error)
	Convert(ctx context.Context, auth model.AuthContext, id string) (*model.Customer, error)
}
