package ports

import (
	"context"

	"crm-web-server/internal/model"
)

// CustomerRepository : хранилище клиентов (Postgres или MongoDB)
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id string) error
	AppendDocument(ctx context.Context, customerID string, document model.Document) error
	RemoveDocument(ctx context.Context, customerID, documentID string) error
	UpdateDocumentTitle(ctx context.Context, customerID, documentID, title string) error
}

type CustomerService interface {
	Create(ctx context.Context, auth model.AuthContext, customer *model.Customer) (*model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error)
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, auth model.AuthContext, customerID string, file *model.UploadedFile) (*model.Document, error)
	DeleteDocument(ctx context.Context, customerID, documentID string) error
	RenameDocument(ctx context.Context, customerID, documentID, title string) error
	DocumentURL(ctx context.Context, customerID, documentID string) (*model.SignedURL, error)
}
