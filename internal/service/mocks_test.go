package service_test

import (
	"context"
	"io"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/security"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// ===== ObjectStorage =====

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	return m.Called(ctx, key, body, contentType).Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) PublicURL(key string) string {
	return m.Called(key).String(0)
}

// ===== ShareLinkRepository =====

type MockShareLinkRepository struct{ mock.Mock }

func (m *MockShareLinkRepository) Create(ctx context.Context, link *model.ShareableLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockShareLinkRepository) GetByID(ctx context.Context, id string) (*model.ShareableLink, error) {
	args := m.Called(ctx, id)
	if link, ok := args.Get(0).(*model.ShareableLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareLinkRepository) ConsumeAccess(ctx context.Context, id string, now time.Time) (*model.ShareableLink, bool, error) {
	args := m.Called(ctx, id, now)
	link, _ := args.Get(0).(*model.ShareableLink)
	return link, args.Bool(1), args.Error(2)
}

func (m *MockShareLinkRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockShareLinkRepository) ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.ShareableLink, error) {
	args := m.Called(ctx, userID, page, limit)
	links, _ := args.Get(0).([]*model.ShareableLink)
	return links, args.Error(1)
}

func (m *MockShareLinkRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShareLinkRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ===== UploadLinkRepository =====

type MockUploadLinkRepository struct{ mock.Mock }

func (m *MockUploadLinkRepository) Create(ctx context.Context, link *model.CustomerUploadLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockUploadLinkRepository) GetByID(ctx context.Context, id string) (*model.CustomerUploadLink, error) {
	args := m.Called(ctx, id)
	if link, ok := args.Get(0).(*model.CustomerUploadLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUploadLinkRepository) ConsumeAccess(ctx context.Context, id string, now time.Time) (*model.CustomerUploadLink, bool, error) {
	args := m.Called(ctx, id, now)
	link, _ := args.Get(0).(*model.CustomerUploadLink)
	return link, args.Bool(1), args.Error(2)
}

func (m *MockUploadLinkRepository) ReserveFileSlot(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUploadLinkRepository) ReleaseFileSlot(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUploadLinkRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUploadLinkRepository) ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.CustomerUploadLink, error) {
	args := m.Called(ctx, userID, page, limit)
	links, _ := args.Get(0).([]*model.CustomerUploadLink)
	return links, args.Error(1)
}

func (m *MockUploadLinkRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUploadLinkRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ===== CustomerRepository =====

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if customer, ok := args.Get(0).(*model.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error) {
	args := m.Called(ctx, search, page, limit)
	customers, _ := args.Get(0).([]*model.Customer)
	return customers, args.Int(1), args.Error(2)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) AppendDocument(ctx context.Context, customerID string, document model.Document) error {
	return m.Called(ctx, customerID, document).Error(0)
}

func (m *MockCustomerRepository) RemoveDocument(ctx context.Context, customerID, documentID string) error {
	return m.Called(ctx, customerID, documentID).Error(0)
}

func (m *MockCustomerRepository) UpdateDocumentTitle(ctx context.Context, customerID, documentID, title string) error {
	return m.Called(ctx, customerID, documentID, title).Error(0)
}

// ===== LeadRepository =====

type MockLeadRepository struct{ mock.Mock }

func (m *MockLeadRepository) Create(ctx context.Context, exec sqlx.ExtContext, lead *model.Lead) error {
	return m.Called(ctx, exec, lead).Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Lead, error) {
	args := m.Called(ctx, exec, id)
	if lead, ok := args.Get(0).(*model.Lead); ok {
		return lead, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, exec sqlx.ExtContext, filter model.LeadFilter, page, limit int) ([]*model.Lead, error) {
	args := m.Called(ctx, exec, filter, page, limit)
	leads, _ := args.Get(0).([]*model.Lead)
	return leads, args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id string, status model.LeadStatus) error {
	return m.Called(ctx, exec, id, status).Error(0)
}

func (m *MockLeadRepository) MarkConverted(ctx context.Context, exec sqlx.ExtContext, id, customerID string) error {
	return m.Called(ctx, exec, id, customerID).Error(0)
}

func (m *MockLeadRepository) AppendDocument(ctx context.Context, exec sqlx.ExtContext, id string, document model.Document) error {
	return m.Called(ctx, exec, id, document).Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	return m.Called(ctx, exec, id).Error(0)
}

// ===== UserRepository =====

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	args := m.Called(ctx, exec, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	args := m.Called(ctx, exec, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid string, newPasswordHash string) error {
	return m.Called(ctx, exec, uuid, newPasswordHash).Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext, cursor string, limit int) ([]*model.User, string, error) {
	args := m.Called(ctx, exec, cursor, limit)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.String(1), args.Error(2)
	}
	return nil, "", args.Error(2)
}

func (m *MockUserRepository) Exists(ctx context.Context, exec sqlx.ExtContext, uuid string) (bool, error) {
	args := m.Called(ctx, exec, uuid)
	return args.Bool(0), args.Error(1)
}

// ===== JWT =====

type MockJWTService struct{ mock.Mock }

func (m *MockJWTService) GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error) {
	args := m.Called(userUUID)

	var tokens *model.TokensPair
	if t := args.Get(0); t != nil {
		tokens = t.(*model.TokensPair)
	}

	var refresh *model.RefreshToken
	if r := args.Get(1); r != nil {
		refresh = r.(*model.RefreshToken)
	}

	return tokens, refresh, args.Error(2)
}

func (m *MockJWTService) ValidateJWT(tokenString string, secret []byte) (*security.Claims, error) {
	args := m.Called(tokenString, secret)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJWTRepo struct{ mock.Mock }

func (m *MockJWTRepo) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockJWTRepo) FindByUUID(ctx context.Context, uuid string) (*model.RefreshToken, error) {
	args := m.Called(ctx, uuid)
	if token, ok := args.Get(0).(*model.RefreshToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTRepo) MarkRefreshTokenUsedByUUID(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

func (m *MockJWTRepo) RevokeAllForUser(ctx context.Context, userUUID string) (int64, error) {
	args := m.Called(ctx, userUUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJWTRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
