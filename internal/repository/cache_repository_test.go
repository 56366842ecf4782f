package repository_test

import (
	"context"
	"testing"

	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	items    map[string]*model.Customer
	versions map[string]int64
	deletes  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]*model.Customer{}, versions: map[string]int64{}}
}

func (c *memoryCache) CustomerVersion(_ context.Context, id string) (int64, error) {
	return c.versions[id], nil
}

func (c *memoryCache) SetCustomer(_ context.Context, customer *model.Customer, version int64) (bool, error) {
	if c.versions[customer.ID] != version {
		return false, nil
	}
	c.items[customer.ID] = customer
	return true, nil
}

func (c *memoryCache) GetCustomer(_ context.Context, id string) (*model.Customer, error) {
	return c.items[id], nil
}

func (c *memoryCache) DeleteCustomer(_ context.Context, id string) error {
	c.deletes++
	c.versions[id]++
	delete(c.items, id)
	return nil
}

type countingCustomerRepo struct {
	ports.CustomerRepository
	customer *model.Customer
	reads    int
	// onRead : вызывается после снимка клиента, но до возврата из GetByID
	onRead func()
}

func (r *countingCustomerRepo) GetByID(_ context.Context, id string) (*model.Customer, error) {
	r.reads++
	copied := *r.customer
	copied.Documents = append(model.DocumentList(nil), r.customer.Documents...)
	if r.onRead != nil {
		hook := r.onRead
		r.onRead = nil
		hook()
	}
	return &copied, nil
}

func (r *countingCustomerRepo) RemoveDocument(_ context.Context, _ string, documentID string) error {
	kept := r.customer.Documents[:0]
	for _, d := range r.customer.Documents {
		if d.ID != documentID {
			kept = append(kept, d)
		}
	}
	r.customer.Documents = kept
	return nil
}

func (r *countingCustomerRepo) AppendDocument(_ context.Context, _ string, document model.Document) error {
	r.customer.Documents = append(r.customer.Documents, document)
	return nil
}

func TestCachedCustomerRepository(t *testing.T) {
	ctx := context.Background()
	inner := &countingCustomerRepo{customer: &model.Customer{ID: "c1", PersonalData: model.PersonalData{Name: "Ana"}}}
	cache := newMemoryCache()
	repo := repository.NewCachedCustomerRepository(inner, cache)

	first, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.Name)

	_, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.reads, "второе чтение должно прийти из кэша")

	require.NoError(t, repo.AppendDocument(ctx, "c1", model.Document{ID: "d1"}))
	assert.Equal(t, 1, cache.deletes)

	fresh, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.reads)
	_, ok := fresh.Documents.Find("d1")
	assert.True(t, ok)
}

func TestCachedCustomerRepository_WriteDuringReadDoesNotCacheStale(t *testing.T) {
	ctx := context.Background()
	inner := &countingCustomerRepo{customer: &model.Customer{
		ID:        "c1",
		Documents: model.DocumentList{{ID: "d1", FileName: "rg.pdf"}},
	}}
	cache := newMemoryCache()
	repo := repository.NewCachedCustomerRepository(inner, cache)

	inner.onRead = func() {
		require.NoError(t, repo.RemoveDocument(ctx, "c1", "d1"))
	}

	stale, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	_, ok := stale.Documents.Find("d1")
	assert.True(t, ok, "первое чтение видит снимок до удаления")
	assert.Empty(t, cache.items, "снимок до удаления не должен попасть в кэш")

	fresh, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	_, ok = fresh.Documents.Find("d1")
	assert.False(t, ok)
	assert.Equal(t, 2, inner.reads)
}
