package handler_test

import (
	"context"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/security"

	"github.com/stretchr/testify/mock"
)

// ===== ShareLinkService =====

type MockShareLinkService struct{ mock.Mock }

func (m *MockShareLinkService) Create(ctx context.Context, auth model.AuthContext, spec model.ShareLinkSpec) (*model.ShareableLink, error) {
	args := m.Called(ctx, auth, spec)
	link, _ := args.Get(0).(*model.ShareableLink)
	return link, args.Error(1)
}

func (m *MockShareLinkService) Resolve(ctx context.Context, linkID string) (*model.ResolvedShareLink, error) {
	args := m.Called(ctx, linkID)
	resolved, _ := args.Get(0).(*model.ResolvedShareLink)
	return resolved, args.Error(1)
}

func (m *MockShareLinkService) View(ctx context.Context, linkID string) (*model.SharedView, error) {
	args := m.Called(ctx, linkID)
	view, _ := args.Get(0).(*model.SharedView)
	return view, args.Error(1)
}

func (m *MockShareLinkService) DownloadAll(ctx context.Context, linkID string) (*model.DownloadBundle, error) {
	args := m.Called(ctx, linkID)
	bundle, _ := args.Get(0).(*model.DownloadBundle)
	return bundle, args.Error(1)
}

func (m *MockShareLinkService) Deactivate(ctx context.Context, auth model.AuthContext, linkID string) error {
	return m.Called(ctx, auth, linkID).Error(0)
}

func (m *MockShareLinkService) ListForUser(ctx context.Context, auth model.AuthContext, page, limit int) ([]*model.ShareableLink, error) {
	args := m.Called(ctx, auth, page, limit)
	links, _ := args.Get(0).([]*model.ShareableLink)
	return links, args.Error(1)
}

func (m *MockShareLinkService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ===== UploadLinkService =====

type MockUploadLinkService struct{ mock.Mock }

func (m *MockUploadLinkService) Create(ctx context.Context, auth model.AuthContext, spec model.UploadLinkSpec) (*model.CustomerUploadLink, error) {
	args := m.Called(ctx, auth, spec)
	link, _ := args.Get(0).(*model.CustomerUploadLink)
	return link, args.Error(1)
}

func (m *MockUploadLinkService) Resolve(ctx context.Context, linkID string) (*model.ResolvedUploadLink, error) {
	args := m.Called(ctx, linkID)
	resolved, _ := args.Get(0).(*model.ResolvedUploadLink)
	return resolved, args.Error(1)
}

func (m *MockUploadLinkService) CheckUploadable(ctx context.Context, linkID string) error {
	return m.Called(ctx, linkID).Error(0)
}

func (m *MockUploadLinkService) Upload(ctx context.Context, linkID string, file *model.UploadedFile) (*model.UploadResult, error) {
	args := m.Called(ctx, linkID, file)
	result, _ := args.Get(0).(*model.UploadResult)
	return result, args.Error(1)
}

func (m *MockUploadLinkService) Deactivate(ctx context.Context, auth model.AuthContext, linkID string) error {
	return m.Called(ctx, auth, linkID).Error(0)
}

func (m *MockUploadLinkService) ListForUser(ctx context.Context, auth model.AuthContext, page, limit int) ([]*model.CustomerUploadLink, error) {
	args := m.Called(ctx, auth, page, limit)
	links, _ := args.Get(0).([]*model.CustomerUploadLink)
	return links, args.Error(1)
}

func (m *MockUploadLinkService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ===== SignedURLService =====

type MockSignedURLService struct{ mock.Mock }

func (m *MockSignedURLService) Issue(ctx context.Context, filePath string, ttl time.Duration) (*model.SignedURL, error) {
	args := m.Called(ctx, filePath, ttl)
	signed, _ := args.Get(0).(*model.SignedURL)
	return signed, args.Error(1)
}

func (m *MockSignedURLService) IssueForGrant(ctx context.Context, filePath string, grantExpiresAt time.Time) (*model.SignedURL, error) {
	args := m.Called(ctx, filePath, grantExpiresAt)
	signed, _ := args.Get(0).(*model.SignedURL)
	return signed, args.Error(1)
}

func (m *MockSignedURLService) IssueForDocuments(ctx context.Context, documents []model.SharedDocument, grantExpiresAt time.Time) ([]model.SharedDocument, error) {
	args := m.Called(ctx, documents, grantExpiresAt)
	signed, _ := args.Get(0).([]model.SharedDocument)
	return signed, args.Error(1)
}

// ===== CustomerService =====

type MockCustomerService struct{ mock.Mock }

func (m *MockCustomerService) Create(ctx context.Context, auth model.AuthContext, customer *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, auth, customer)
	created, _ := args.Get(0).(*model.Customer)
	return created, args.Error(1)
}

func (m *MockCustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*model.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error) {
	args := m.Called(ctx, search, page, limit)
	customers, _ := args.Get(0).([]*model.Customer)
	return customers, args.Int(1), args.Error(2)
}

func (m *MockCustomerService) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, customer)
	updated, _ := args.Get(0).(*model.Customer)
	return updated, args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerService) UploadDocument(ctx context.Context, auth model.AuthContext, customerID string, file *model.UploadedFile) (*model.Document, error) {
	args := m.Called(ctx, auth, customerID, file)
	doc, _ := args.Get(0).(*model.Document)
	return doc, args.Error(1)
}

func (m *MockCustomerService) DeleteDocument(ctx context.Context, customerID, documentID string) error {
	return m.Called(ctx, customerID, documentID).Error(0)
}

func (m *MockCustomerService) RenameDocument(ctx context.Context, customerID, documentID, title string) error {
	return m.Called(ctx, customerID, documentID, title).Error(0)
}

func (m *MockCustomerService) DocumentURL(ctx context.Context, customerID, documentID string) (*model.SignedURL, error) {
	args := m.Called(ctx, customerID, documentID)
	signed, _ := args.Get(0).(*model.SignedURL)
	return signed, args.Error(1)
}

// ===== LeadService =====

type MockLeadService struct{ mock.Mock }

func (m *MockLeadService) Submit(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	args := m.Called(ctx, lead)
	created, _ := args.Get(0).(*model.Lead)
	return created, args.Error(1)
}

func (m *MockLeadService) Get(ctx context.Context, id string) (*model.Lead, error) {
	args := m.Called(ctx, id)
	lead, _ := args.Get(0).(*model.Lead)
	return lead, args.Error(1)
}

func (m *MockLeadService) List(ctx context.Context, filter model.LeadFilter, page, limit int) ([]*model.Lead, error) {
	args := m.Called(ctx, filter, page, limit)
	leads, _ := args.Get(0).([]*model.Lead)
	return leads, args.Error(1)
}

func (m *MockLeadService) UpdateStatus(ctx context.Context, id string, status model.LeadStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockLeadService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLeadService) UploadDocument(ctx context.Context, id string, file *model.UploadedFile) (*model.Document, error) {
	args := m.Called(ctx, id, file)
	doc, _ := args.Get(0).(*model.Document)
	return doc, args.Error(1)
}

func (m *MockLeadService) Convert(ctx context.Context, auth model.AuthContext, id string) (*model.Customer, error) {
	args := m.Called(ctx, auth, id)
	customer, _ := args.Get(0).(*model.Customer)
	return customer, args.Error(1)
}

// ===== UserService =====

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, adminToken, email, name, password string) (*model.User, error) {
	args := m.Called(ctx, adminToken, email, name, password)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, auth model.AuthContext, uuid string) (*model.User, error) {
	args := m.Called(ctx, auth, uuid)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, auth model.AuthContext, uuid, newPassword string) error {
	return m.Called(ctx, auth, uuid, newPassword).Error(0)
}

func (m *MockUserService) ListUsers(ctx context.Context, adminToken, cursor string, limit int) ([]*model.User, string, error) {
	args := m.Called(ctx, adminToken, cursor, limit)
	users, _ := args.Get(0).([]*model.User)
	return users, args.String(1), args.Error(2)
}

// ===== AuthenticationService =====

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*model.TokensPair, error) {
	args := m.Called(ctx, email, password, userAgent, ipAddress)
	tokens, _ := args.Get(0).(*model.TokensPair)
	return tokens, args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, userAgent, ipAddress, accessToken, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, userAgent, ipAddress, accessToken, refreshToken)
	tokens, _ := args.Get(0).(*model.TokensPair)
	return tokens, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshTokenUUID string) error {
	return m.Called(ctx, refreshTokenUUID).Error(0)
}

// ===== JWTServiceInterface =====

type MockJWTService struct{ mock.Mock }

func (m *MockJWTService) GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error) {
	args := m.Called(userUUID)
	tokens, _ := args.Get(0).(*model.TokensPair)
	refresh, _ := args.Get(1).(*model.RefreshToken)
	return tokens, refresh, args.Error(2)
}

func (m *MockJWTService) ValidateJWT(tokenString string, secret []byte) (*security.Claims, error) {
	args := m.Called(tokenString, secret)
	claims, _ := args.Get(0).(*security.Claims)
	return claims, args.Error(1)
}
