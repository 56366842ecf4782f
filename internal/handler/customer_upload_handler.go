package handler

import (
	"context"
	"net/http"
	"time"

	"crm-web-server/internal/model/requestresponse"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type CustomerUploadHandler struct {
	ports.UploadLinkService
	maxRequestBytes int64
}

func NewCustomerUploadHandler(uploadLinkService ports.UploadLinkService, maxRequestBytes int64) *CustomerUploadHandler {
	return &CustomerUploadHandler{uploadLinkService, maxRequestBytes}
}

// CreateLink godoc
// @Summary Создание ссылки на загрузку документов клиентом
// @Tags CustomerUpload
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateUploadLinkRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.CustomerUploadLink
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/customer-upload/create [post]
func (h *CustomerUploadHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	var req requestresponse.CreateUploadLinkRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	link, err := h.UploadLinkService.Create(r.Context(), auth, req.ToSpec())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, link)
}

// ResolveLink godoc
// @Summary Открытие страницы загрузки
// @Description Публичный эндпоинт. Засчитывает обращение и возвращает параметры ссылки и оставшееся время в секундах.
// @Tags CustomerUpload
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Success 200 {object} requestresponse.UploadLinkResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 410 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse
// @Router /api/customer-upload/{linkId} [get]
func (h *CustomerUploadHandler) ResolveLink(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.UploadLinkService.Resolve(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UploadLinkResponse{
		Link:          resolved.Link,
		TimeRemaining: int64(resolved.TimeRemaining / time.Second),
	})
}

// Upload godoc
// @Summary Загрузка файла клиентом
// @Description Публичный эндпоинт, multipart/form-data. Тип и размер файла проверяются по политике ссылки.
// @Tags CustomerUpload
// @Accept multipart/form-data
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Param file formData file true "Файл документа"
// @Param documentType formData string false "Тип документа (rg, cpf, comprovante...)"
// @Success 201 {object} model.UploadResult
// @Failure 400 {object} requestresponse.ErrorResponse "Тип не разрешён или файл слишком большой"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 410 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse "Лимит файлов исчерпан"
// @Failure 500 {object} requestresponse.ErrorResponse "try again"
// @Router /api/customer-upload/{linkId}/upload [post]
func (h *CustomerUploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	linkID := chi.URLParam(r, "linkId")
	if err := h.UploadLinkService.CheckUploadable(ctx, linkID); err != nil {
		sendPublicError(w, r, err)
		return
	}

	file, err := readUploadedFile(w, r, h.maxRequestBytes)
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	result, err := h.UploadLinkService.Upload(ctx, linkID, file)
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, result)
}

// Deactivate godoc
// @Summary Деактивация ссылки на загрузку
// @Description Доступна только создателю ссылки.
// @Tags CustomerUpload
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Ссылка деактивирована"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/customer-upload/{linkId}/deactivate [post]
func (h *CustomerUploadHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	if err := h.UploadLinkService.Deactivate(r.Context(), auth, chi.URLParam(r, "linkId")); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyLinks godoc
// @Summary Ссылки на загрузку, созданные текущим пользователем
// @Tags CustomerUpload
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(20) maximum(100)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UploadLinkListResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/customer-upload/my-links [get]
func (h *CustomerUploadHandler) MyLinks(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	page := util.QueryInt(r, "page", 1)
	limit := util.QueryInt(r, "limit", 20)

	links, err := h.UploadLinkService.ListForUser(r.Context(), auth, page, limit)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UploadLinkListResponse{Links: links, Page: page, Limit: limit})
}
