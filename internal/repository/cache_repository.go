package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) CustomerVersion(ctx context.Context, id string) (int64, error) {
	version, err := r.client.Client.Get(ctx, r.versionKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, util.LogError("ошибка чтения версии клиента из Redis", err)
	}
	return version, nil
}

// SetCustomer : WATCH на ключ версии, запись уходит в MULTI/EXEC.
// Если DeleteCustomer успел увеличить версию, запись отбрасывается
func (r *CacheRepository) SetCustomer(ctx context.Context, customer *model.Customer, version int64) (bool, error) {
	data, err := json.Marshal(customer)
	if err != nil {
		return false, util.LogError("ошибка сериализации клиента", err)
	}

	versionKey := r.versionKey(customer.ID)
	stored := false
	err = r.client.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key(customer.ID), data, r.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, versionKey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, util.LogError("ошибка сохранения в Redis", err)
	}
	return stored, nil
}

func (r *CacheRepository) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	val, err := r.client.Client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения клиента из Redis", err)
	}

	var customer model.Customer
	if err := json.Unmarshal([]byte(val), &customer); err != nil {
		return nil, util.LogError("ошибка десериализации клиента из кэша", err)
	}
	return &customer, nil
}

// DeleteCustomer : версия переживает запись клиента в кэше
func (r *CacheRepository) DeleteCustomer(ctx context.Context, id string) error {
	versionKey := r.versionKey(id)
	_, err := r.client.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		if r.ttl > 0 {
			pipe.Expire(ctx, versionKey, 2*r.ttl)
		}
		pipe.Del(ctx, r.key(id))
		return nil
	})
	if err != nil {
		return util.LogError("ошибка удаления клиента из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(id string) string {
	return fmt.Sprintf("customer:%s", id)
}

func (r *CacheRepository) versionKey(id string) string {
	return fmt.Sprintf("customer:%s:version", id)
}

// CachedCustomerRepository : чтение клиента через Redis, любое изменение сбрасывает запись.
// Ошибки кэша не прерывают запрос
type CachedCustomerRepository struct {
	ports.CustomerRepository
	cache ports.CustomerCache
}

func NewCachedCustomerRepository(repo ports.CustomerRepository, cache ports.CustomerCache) *CachedCustomerRepository {
	return &CachedCustomerRepository{CustomerRepository: repo, cache: cache}
}

// GetByID : версия читается до БД, чтобы чтение, пересёкшееся с записью,
// не вернуло в кэш старого клиента
func (r *CachedCustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if cached, err := r.cache.GetCustomer(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	version, versionErr := r.cache.CustomerVersion(ctx, id)

	customer, err := r.CustomerRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if versionErr != nil {
		return customer, nil
	}

	stored, err := r.cache.SetCustomer(ctx, customer, version)
	if err != nil {
		util.Logger.Warn("[CustomerCache] не удалось сохранить клиента в кэш", zap.String("customer_id", id), zap.Error(err))
	} else if !stored {
		util.Logger.Debug("[CustomerCache] клиент изменился во время чтения, кэш не заполнен", zap.String("customer_id", id))
	}
	return customer, nil
}

func (r *CachedCustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	defer r.invalidate(ctx, customer.ID)
	return r.CustomerRepository.Update(ctx, customer)
}

func (r *CachedCustomerRepository) Delete(ctx context.Context, id string) error {
	defer r.invalidate(ctx, id)
	return r.CustomerRepository.Delete(ctx, id)
}

func (r *CachedCustomerRepository) AppendDocument(ctx context.Context, customerID string, document model.Document) error {
	defer r.invalidate(ctx, customerID)
	return r.CustomerRepository.AppendDocument(ctx, customerID, document)
}

func (r *CachedCustomerRepository) RemoveDocument(ctx context.Context, customerID, documentID string) error {
	defer r.invalidate(ctx, customerID)
	return r.CustomerRepository.RemoveDocument(ctx, customerID, documentID)
}

func (r *CachedCustomerRepository) UpdateDocumentTitle(ctx context.Context, customerID, documentID, title string) error {
	defer r.invalidate(ctx, customerID)
	return r.CustomerRepository.UpdateDocumentTitle(ctx, customerID, documentID, title)
}

func (r *CachedCustomerRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.DeleteCustomer(ctx, id); err != nil {
		util.Logger.Warn("[CustomerCache] не удалось сбросить кэш клиента", zap.String("customer_id", id), zap.Error(err))
	}
}
