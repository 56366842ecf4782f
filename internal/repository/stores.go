package repository

import (
	"fmt"

	"crm-web-server/config"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/repository/mongostore"
)

// Stores : хранилища ссылок и клиентов выбранного драйвера
type Stores struct {
	ShareLinks  ports.ShareLinkRepository
	UploadLinks ports.UploadLinkRepository
	Customers   ports.CustomerRepository
}

// NewStores : driver "postgres" (по умолчанию) или "mongo"
func NewStores(driver string, database *config.Database, mongoClient *config.MongoClient) (*Stores, error) {
	switch driver {
	case "", "postgres":
		if database == nil {
			return nil, fmt.Errorf("драйвер postgres требует подключения к БД")
		}
		return &Stores{
			ShareLinks:  NewShareLinkRepository(database),
			UploadLinks: NewUploadLinkRepository(database),
			Customers:   NewCustomerRepository(database),
		}, nil
	case "mongo":
		if mongoClient == nil {
			return nil, fmt.Errorf("драйвер mongo требует подключения к MongoDB")
		}
		return &Stores{
			ShareLinks:  mongostore.NewShareLinkStore(mongoClient.Database),
			UploadLinks: mongostore.NewUploadLinkStore(mongoClient.Database),
			Customers:   mongostore.NewCustomerStore(mongoClient.Database),
		}, nil
	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища: %s", driver)
	}
}

// WithCustomerCache : чтение клиентов через Redis
func (s *Stores) WithCustomerCache(cache ports.CustomerCache) {
	if cache == nil {
		return
	}
	s.Customers = NewCachedCustomerRepository(s.Customers, cache)
}
