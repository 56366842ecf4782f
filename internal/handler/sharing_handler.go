package handler

import (
	"net/http"
	"time"

	"crm-web-server/internal/model/requestresponse"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type SharingHandler struct {
	ports.ShareLinkService
	signer ports.SignedURLService
}

func NewSharingHandler(shareLinkService ports.ShareLinkService, signer ports.SignedURLService) *SharingHandler {
	return &SharingHandler{shareLinkService, signer}
}

// CreateLink godoc
// @Summary Создание ссылки на просмотр клиента
// @Description Создаёт ссылку с набором разрешений, сроком жизни и необязательным лимитом обращений.
// @Tags Sharing
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateShareLinkRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.ShareableLink
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Клиент не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/sharing/create [post]
func (h *SharingHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	var req requestresponse.CreateShareLinkRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	link, err := h.ShareLinkService.Create(r.Context(), auth, req.ToSpec())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, link)
}

// ViewLink godoc
// @Summary Просмотр клиента по ссылке
// @Description Публичный эндпоинт. Засчитывает обращение и возвращает только разрешённые группы данных и документы с подписанными URL.
// @Tags Sharing
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Success 200 {object} model.SharedView
// @Failure 404 {object} requestresponse.ErrorResponse "link expired or not found"
// @Failure 410 {object} requestresponse.ErrorResponse "Срок действия истёк или ссылка деактивирована"
// @Failure 429 {object} requestresponse.ErrorResponse "Лимит обращений исчерпан"
// @Failure 500 {object} requestresponse.ErrorResponse "try again"
// @Router /api/sharing/{linkId} [get]
func (h *SharingHandler) ViewLink(w http.ResponseWriter, r *http.Request) {
	view, err := h.ShareLinkService.View(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, view)
}

// RecordAccess godoc
// @Summary Регистрация просмотра
// @Description Публичный эндпоинт без тела. Засчитывает обращение к ссылке.
// @Tags Sharing
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Success 200 {object} requestresponse.AccessResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 410 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse
// @Router /api/sharing/{linkId}/access [post]
func (h *SharingHandler) RecordAccess(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.ShareLinkService.Resolve(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AccessResponse{
		AccessCount:   resolved.Link.AccessCount,
		TimeRemaining: int64(resolved.TimeRemaining / time.Second),
	})
}

// DownloadAll godoc
// @Summary Подписанные URL всех документов ссылки
// @Description Публичный эндпоинт. Засчитывает обращение, ссылка должна разрешать просмотр документов.
// @Tags Sharing
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Success 200 {object} model.DownloadBundle
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 410 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/sharing/{linkId}/download-all [get]
func (h *SharingHandler) DownloadAll(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.ShareLinkService.DownloadAll(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, bundle)
}

// SignedURL godoc
// @Summary Подписанный URL объекта хранилища
// @Description Выдаёт временную ссылку на файл по его пути. expiresIn в секундах, по умолчанию из конфигурации.
// @Tags Sharing
// @Accept json
// @Produce json
// @Param body body requestresponse.SignedURLRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SignedURLResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/sharing/document/signed-url [post]
func (h *SharingHandler) SignedURL(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignedURLRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	signed, err := h.signer.Issue(r.Context(), req.FilePath, time.Duration(req.ExpiresIn)*time.Second)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SignedURLResponse{
		SignedURL: signed.URL,
		ExpiresIn: signed.ExpiresIn,
	})
}

// MyLinks godoc
// @Summary Ссылки на просмотр, созданные текущим пользователем
// @Tags Sharing
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(20) maximum(100)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ShareLinkListResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/sharing/my-links [get]
func (h *SharingHandler) MyLinks(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	page := util.QueryInt(r, "page", 1)
	limit := util.QueryInt(r, "limit", 20)

	links, err := h.ShareLinkService.ListForUser(r.Context(), auth, page, limit)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ShareLinkListResponse{Links: links, Page: page, Limit: limit})
}

// Deactivate godoc
// @Summary Деактивация ссылки на просмотр
// @Description Доступна только создателю ссылки. Повторная деактивация не является ошибкой.
// @Tags Sharing
// @Produce json
// @Param linkId path string true "Идентификатор ссылки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Ссылка деактивирована"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/sharing/{linkId}/deactivate [post]
func (h *SharingHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	if err := h.ShareLinkService.Deactivate(r.Context(), auth, chi.URLParam(r, "linkId")); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
