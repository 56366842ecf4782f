package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"crm-web-server/internal/handler"
	"crm-web-server/internal/model"
	"crm-web-server/internal/model/requestresponse"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func uploadRouter(svc *MockUploadLinkService, maxRequestBytes int64) chi.Router {
	h := handler.NewCustomerUploadHandler(svc, maxRequestBytes)
	r := chi.NewRouter()
	r.Route("/api/customer-upload", func(r chi.Router) {
		r.Post("/create", h.CreateLink)
		r.Get("/my-links", h.MyLinks)
		r.Get("/{linkId}", h.ResolveLink)
		r.Post("/{linkId}/upload", h.Upload)
		r.Post("/{linkId}/deactivate", h.Deactivate)
	})
	return r
}

func TestCustomerUploadHandler_CreateLink(t *testing.T) {
	svc := new(MockUploadLinkService)
	svc.On("Create", mock.Anything, model.AuthContext{UserUUID: "user-1"}, mock.MatchedBy(func(spec model.UploadLinkSpec) bool {
		return spec.CustomerID == "c1" && spec.MaxFiles == 3 && spec.MaxFileSize == 1024 && len(spec.AllowedDocumentTypes) == 2
	})).Return(&model.CustomerUploadLink{Grant: model.Grant{ID: "up"}, MaxFiles: 3}, nil)

	router := uploadRouter(svc, 1<<20)

	rec, _ := serve(t, router, asUser(jsonRequest(t, http.MethodPost, "/api/customer-upload/create", map[string]interface{}{
		"customerId":           "c1",
		"expiresInHours":       48,
		"allowedDocumentTypes": []string{"application/pdf", "image/jpeg"},
		"maxFileSize":          1024,
		"maxFiles":             3,
	}), "user-1"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = serve(t, router, asUser(jsonRequest(t, http.MethodPost, "/api/customer-upload/create", map[string]interface{}{
		"customerId":           "c1",
		"expiresInHours":       48,
		"allowedDocumentTypes": []string{},
		"maxFileSize":          1024,
		"maxFiles":             3,
	}), "user-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "Create", 1)
}

func TestCustomerUploadHandler_ResolveLink(t *testing.T) {
	svc := new(MockUploadLinkService)
	svc.On("Resolve", mock.Anything, "up").Return(&model.ResolvedUploadLink{
		Link:          &model.CustomerUploadLink{Grant: model.Grant{ID: "up"}, CustomerName: "Maria"},
		TimeRemaining: 2 * time.Hour,
	}, nil)
	svc.On("Resolve", mock.Anything, "gone").Return(nil, fmt.Errorf("деактивирована: %w", model.ErrExpired))

	router := uploadRouter(svc, 1<<20)

	rec, env := serve(t, router, jsonRequest(t, http.MethodGet, "/api/customer-upload/up", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.UploadLinkResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(7200), resp.TimeRemaining)
	assert.Equal(t, "Maria", resp.Link.CustomerName)

	rec, env = serve(t, router, jsonRequest(t, http.MethodGet, "/api/customer-upload/gone", nil))
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "link expired or not found", env.Error)
}

func TestCustomerUploadHandler_Upload(t *testing.T) {
	data := []byte("%PDF-1.4 conteúdo")

	svc := new(MockUploadLinkService)
	svc.On("CheckUploadable", mock.Anything, "up").Return(nil)
	svc.On("Upload", mock.Anything, "up", mock.MatchedBy(func(f *model.UploadedFile) bool {
		return f.FileName == "rg.pdf" && f.ContentType == "application/pdf" && f.DocumentType == "rg" && bytes.Equal(f.Data, data)
	})).Return(&model.UploadResult{DocumentID: "doc-1", FileName: "rg.pdf", FileSize: int64(len(data))}, nil)

	rec, env := serve(t, uploadRouter(svc, 1<<20), multipartRequest(t, "/api/customer-upload/up/upload", "rg.pdf", "application/pdf", data))

	require.Equal(t, http.StatusCreated, rec.Code)
	var result model.UploadResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "doc-1", result.DocumentID)
}

func TestCustomerUploadHandler_Upload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unsupported type", fmt.Errorf("image/png: %w", model.ErrUnsupportedType), http.StatusBadRequest, "file type not allowed"},
		{"too large", fmt.Errorf("2048 > 1024: %w", model.ErrTooLarge), http.StatusBadRequest, "file too large"},
		{"no slots", fmt.Errorf("maxFiles: %w", model.ErrQuotaExceeded), http.StatusTooManyRequests, "link expired or not found"},
		{"storage", fmt.Errorf("s3: AccessDenied: %w", model.ErrStorage), http.StatusInternalServerError, "try again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUploadLinkService)
			svc.On("CheckUploadable", mock.Anything, "up").Return(nil)
			svc.On("Upload", mock.Anything, "up", mock.Anything).Return(nil, tt.err)

			rec, env := serve(t, uploadRouter(svc, 1<<20), multipartRequest(t, "/api/customer-upload/up/upload", "a.pdf", "application/pdf", []byte("%PDF")))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, env.Error)
		})
	}
}

func TestCustomerUploadHandler_Upload_RequestLimits(t *testing.T) {
	svc := new(MockUploadLinkService)
	svc.On("CheckUploadable", mock.Anything, "up").Return(nil)

	t.Run("body over limit", func(t *testing.T) {
		rec, env := serve(t, uploadRouter(svc, 512), multipartRequest(t, "/api/customer-upload/up/upload", "a.pdf", "application/pdf", make([]byte, 4096)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "file too large", env.Error)
	})

	t.Run("missing file field", func(t *testing.T) {
		rec, _ := serve(t, uploadRouter(svc, 1<<20), jsonRequest(t, http.MethodPost, "/api/customer-upload/up/upload", map[string]string{"a": "b"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerUploadHandler_Upload_DeadLinkBeforeBody(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"expired", fmt.Errorf("истекла: %w", model.ErrExpired), http.StatusGone},
		{"unknown", fmt.Errorf("ссылка: %w", model.ErrNotFound), http.StatusNotFound},
		{"quota", fmt.Errorf("лимит: %w", model.ErrQuotaExceeded), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUploadLinkService)
			svc.On("CheckUploadable", mock.Anything, "up").Return(tt.err)

			// тело больше лимита: ответ определяется ссылкой, а не размером
			rec, env := serve(t, uploadRouter(svc, 512), multipartRequest(t, "/api/customer-upload/up/upload", "a.pdf", "application/pdf", make([]byte, 4096)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "link expired or not found", env.Error)
			svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCustomerUploadHandler_Deactivate(t *testing.T) {
	svc := new(MockUploadLinkService)
	auth := model.AuthContext{UserUUID: "user-2"}
	svc.On("Deactivate", mock.Anything, auth, "up").Return(fmt.Errorf("чужая ссылка: %w", model.ErrForbidden))

	rec, _ := serve(t, uploadRouter(svc, 1<<20), asUser(jsonRequest(t, http.MethodPost, "/api/customer-upload/up/deactivate", nil), "user-2"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = serve(t, uploadRouter(svc, 1<<20), jsonRequest(t, http.MethodPost, "/api/customer-upload/up/deactivate", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
