package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/service"
	"crm-web-server/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadFixture struct {
	svc       *service.UploadLinkService
	links     *MockUploadLinkRepository
	customers *MockCustomerRepository
	storage   *MockStorage
	clock     *testutil.StubClock
}

func newUploadFixture() *uploadFixture {
	f := &uploadFixture{
		links:     new(MockUploadLinkRepository),
		customers: new(MockCustomerRepository),
		storage:   new(MockStorage),
		clock:     testutil.NewStubClock(testNow),
	}
	signer := service.NewSignedURLService(f.storage, f.clock, time.Hour, 5*time.Minute)
	f.svc = service.NewUploadLinkService(f.links, f.customers, f.storage, signer, f.clock, &testutil.StubIDGenerator{Prefix: "doc"}, 720)
	return f
}

func testUploadLink() *model.CustomerUploadLink {
	return &model.CustomerUploadLink{
		Grant: model.Grant{
			ID:          "up-1",
			CustomerID:  "c1",
			CreatedBy:   "user-1",
			CreatedAt:   testNow.Add(-time.Hour),
			ExpiresAt:   testNow.Add(time.Hour),
			AccessCount: 1,
			MaxAccess:   intPtr(1),
			IsActive:    true,
		},
		CustomerName:         "Maria Souza",
		CustomerCPF:          "123.456.789-01",
		AllowedDocumentTypes: []string{"application/pdf"},
		MaxFileSize:          1024,
		MaxFiles:             2,
	}
}

func pdfFile(size int) *model.UploadedFile {
	data := make([]byte, size)
	copy(data, "%PDF-1.4")
	return &model.UploadedFile{FileName: "Comprovante.PDF", ContentType: "application/pdf", DocumentType: "comprovante", Data: data}
}

func TestUploadLinkService_Create(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()

	f.customers.On("GetByID", ctx, "c1").Return(testCustomer(), nil)
	f.links.On("Exists", ctx, mock.AnythingOfType("string")).Return(false, nil)
	f.links.On("Create", ctx, mock.AnythingOfType("*model.CustomerUploadLink")).Return(nil)

	link, err := f.svc.Create(ctx, model.AuthContext{UserUUID: "user-1"}, model.UploadLinkSpec{
		CustomerID:           "c1",
		ExpiresInHours:       48,
		AllowedDocumentTypes: []string{" Application/PDF ", "image/jpeg; charset=binary", "application/pdf"},
		MaxFileSize:          10 << 20,
		MaxFiles:             5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", link.CustomerName)
	assert.Equal(t, "12345678901", link.CustomerCPF)
	assert.Equal(t, []string{"application/pdf", "image/jpeg"}, []string(link.AllowedDocumentTypes))
	assert.Equal(t, 0, link.FilesUploaded)
}

func TestUploadLinkService_Create_Validation(t *testing.T) {
	f := newUploadFixture()
	auth := model.AuthContext{UserUUID: "user-1"}

	_, err := f.svc.Create(context.Background(), auth, model.UploadLinkSpec{CustomerID: "c1", ExpiresInHours: 1, MaxFileSize: 1, MaxFiles: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput, "без разрешённых типов")

	_, err = f.svc.Create(context.Background(), auth, model.UploadLinkSpec{CustomerID: "c1", ExpiresInHours: 1, AllowedDocumentTypes: []string{"application/pdf"}, MaxFiles: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput, "без maxFileSize")

	_, err = f.svc.Create(context.Background(), auth, model.UploadLinkSpec{CustomerID: "c1", ExpiresInHours: 1, AllowedDocumentTypes: []string{"application/pdf"}, MaxFileSize: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput, "без maxFiles")
}

func TestUploadLinkService_Upload_Success(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()

	f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)
	f.links.On("ReserveFileSlot", ctx, "up-1").Return(true, nil)
	f.storage.On("Upload", ctx, "12345678901/doc-1.pdf", mock.Anything, "application/pdf").Return(nil)
	f.storage.On("PresignGet", ctx, "12345678901/doc-1.pdf", time.Hour).Return("https://signed/doc-1", nil)
	f.customers.On("AppendDocument", ctx, "c1", mock.MatchedBy(func(d model.Document) bool {
		return d.ID == "doc-1" &&
			d.UploadedVia == model.UploadedViaCustomerUploadLink &&
			d.UploadLinkID == "up-1" &&
			d.FileSize == 100 &&
			d.FileURL == "https://signed/doc-1"
	})).Return(nil)

	result, err := f.svc.Upload(ctx, "up-1", pdfFile(100))

	require.NoError(t, err)
	assert.Equal(t, "doc-1", result.DocumentID)
	assert.Equal(t, "Comprovante.PDF", result.FileName)
	assert.Equal(t, int64(100), result.FileSize)
	f.customers.AssertExpectations(t)
	f.links.AssertNotCalled(t, "ReleaseFileSlot", mock.Anything, mock.Anything)
}

func TestUploadLinkService_Upload_UnsupportedTypeWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)

	file := &model.UploadedFile{FileName: "foto.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	_, err := f.svc.Upload(ctx, "up-1", file)

	assert.ErrorIs(t, err, model.ErrUnsupportedType)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.links.AssertNotCalled(t, "ReserveFileSlot", mock.Anything, mock.Anything)
	f.customers.AssertNotCalled(t, "AppendDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadLinkService_Upload_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("too large", func(t *testing.T) {
		f := newUploadFixture()
		f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)

		_, err := f.svc.Upload(ctx, "up-1", pdfFile(2048))
		assert.ErrorIs(t, err, model.ErrTooLarge)
		f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired link", func(t *testing.T) {
		f := newUploadFixture()
		link := testUploadLink()
		link.ExpiresAt = testNow.Add(-time.Second)
		f.links.On("GetByID", ctx, "up-1").Return(link, nil)

		_, err := f.svc.Upload(ctx, "up-1", pdfFile(10))
		assert.ErrorIs(t, err, model.ErrExpired)
	})

	t.Run("access count above limit", func(t *testing.T) {
		f := newUploadFixture()
		link := testUploadLink()
		link.AccessCount = 2
		f.links.On("GetByID", ctx, "up-1").Return(link, nil)

		_, err := f.svc.Upload(ctx, "up-1", pdfFile(10))
		assert.ErrorIs(t, err, model.ErrQuotaExceeded)
	})

	t.Run("no free file slot", func(t *testing.T) {
		f := newUploadFixture()
		f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)
		f.links.On("ReserveFileSlot", ctx, "up-1").Return(false, nil)

		_, err := f.svc.Upload(ctx, "up-1", pdfFile(10))
		assert.ErrorIs(t, err, model.ErrQuotaExceeded)
		f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty file", func(t *testing.T) {
		f := newUploadFixture()
		_, err := f.svc.Upload(ctx, "up-1", &model.UploadedFile{FileName: "a.pdf"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestUploadLinkService_CheckUploadable(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()

	deactivated := testUploadLink()
	deactivated.ID = "up-2"
	deactivated.IsActive = false

	f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)
	f.links.On("GetByID", ctx, "up-2").Return(deactivated, nil)
	f.links.On("GetByID", ctx, "up-404").Return(nil, fmt.Errorf("ссылка: %w", model.ErrNotFound))

	assert.NoError(t, f.svc.CheckUploadable(ctx, "up-1"))
	assert.ErrorIs(t, f.svc.CheckUploadable(ctx, "up-2"), model.ErrExpired)
	assert.ErrorIs(t, f.svc.CheckUploadable(ctx, "up-404"), model.ErrNotFound)
	f.links.AssertNotCalled(t, "ReserveFileSlot", mock.Anything, mock.Anything)
}

func TestUploadLinkService_Upload_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("storage failure releases slot", func(t *testing.T) {
		f := newUploadFixture()
		f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)
		f.links.On("ReserveFileSlot", ctx, "up-1").Return(true, nil)
		f.links.On("ReleaseFileSlot", mock.Anything, "up-1").Return(nil)
		f.storage.On("Upload", ctx, mock.Anything, mock.Anything, "application/pdf").Return(errors.New("s3 down"))

		_, err := f.svc.Upload(ctx, "up-1", pdfFile(10))

		assert.ErrorIs(t, err, model.ErrStorage)
		f.links.AssertCalled(t, "ReleaseFileSlot", mock.Anything, "up-1")
		f.customers.AssertNotCalled(t, "AppendDocument", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("append failure removes object", func(t *testing.T) {
		f := newUploadFixture()
		f.links.On("GetByID", ctx, "up-1").Return(testUploadLink(), nil)
		f.links.On("ReserveFileSlot", ctx, "up-1").Return(true, nil)
		f.links.On("ReleaseFileSlot", mock.Anything, "up-1").Return(nil)
		f.storage.On("Upload", ctx, "12345678901/doc-1.pdf", mock.Anything, "application/pdf").Return(nil)
		f.storage.On("PresignGet", ctx, "12345678901/doc-1.pdf", time.Hour).Return("https://signed/doc-1", nil)
		f.storage.On("Delete", mock.Anything, "12345678901/doc-1.pdf").Return(nil)
		f.customers.On("AppendDocument", ctx, "c1", mock.Anything).Return(errors.New("db down"))

		_, err := f.svc.Upload(ctx, "up-1", pdfFile(10))

		assert.Error(t, err)
		f.storage.AssertCalled(t, "Delete", mock.Anything, "12345678901/doc-1.pdf")
		f.links.AssertCalled(t, "ReleaseFileSlot", mock.Anything, "up-1")
	})
}

func TestUploadLinkService_Resolve(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()

	link := testUploadLink()
	f.links.On("ConsumeAccess", ctx, "up-1", testNow).Return(link, true, nil).Once()
	f.links.On("ConsumeAccess", ctx, "up-1", testNow).Return(link, false, nil).Once()

	resolved, err := f.svc.Resolve(ctx, "up-1")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, resolved.TimeRemaining)

	_, err = f.svc.Resolve(ctx, "up-1")
	assert.ErrorIs(t, err, model.ErrQuotaExceeded)
}
