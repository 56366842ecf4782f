package ports

import (
	"context"

	"crm-web-server/internal/model"
)

// CustomerCache : Redis слой
type CustomerCache interface {
	// CustomerVersion : счётчик изменений клиента, читается до похода в БД
	CustomerVersion(ctx context.Context, id string) (int64, error)
	// SetCustomer : запись только если версия не изменилась с момента чтения
	SetCustomer(ctx context.Context, customer *model.Customer, version int64) (bool, error)
	// GetCustomer : nil, nil при промахе
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	// DeleteCustomer : увеличивает версию и удаляет запись
	DeleteCustomer(ctx context.Context, id string) error
}
