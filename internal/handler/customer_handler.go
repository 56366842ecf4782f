package handler

import (
	"net/http"

	"crm-web-server/internal/model/requestresponse"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	ports.CustomerService
	maxRequestBytes int64
}

func NewCustomerHandler(customerService ports.CustomerService, maxRequestBytes int64) *CustomerHandler {
	return &CustomerHandler{customerService, maxRequestBytes}
}

// CreateCustomer godoc
// @Summary Создание клиента
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body requestresponse.CustomerRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Customer
// @Failure 400 {object} requestresponse.ErrorResponse "Неверные данные или CPF уже зарегистрирован"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	var req requestresponse.CustomerRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	customer, err := h.CustomerService.Create(r.Context(), auth, req.ToModel(""))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, customer)
}

// GetCustomer godoc
// @Summary Карточка клиента
// @Tags Customers
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Customer
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.CustomerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, customer)
}

// ListCustomers godoc
// @Summary Список клиентов
// @Description Поиск по имени или CPF, постраничная навигация.
// @Tags Customers
// @Produce json
// @Param search query string false "Имя или CPF"
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(20) maximum(100)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CustomerListResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page := util.QueryInt(r, "page", 1)
	limit := util.QueryInt(r, "limit", 20)

	customers, total, err := h.CustomerService.List(r.Context(), r.URL.Query().Get("search"), page, limit)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.CustomerListResponse{
		Customers: customers,
		Total:     total,
		Page:      page,
		Limit:     limit,
	})
}

// UpdateCustomer godoc
// @Summary Обновление клиента
// @Description Документы клиента не изменяются.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param body body requestresponse.CustomerRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Customer
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CustomerRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	customer, err := h.CustomerService.Update(r.Context(), req.ToModel(chi.URLParam(r, "id")))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, customer)
}

// DeleteCustomer godoc
// @Summary Удаление клиента
// @Description Файлы клиента удаляются из хранилища в режиме best effort.
// @Tags Customers
// @Param id path string true "Идентификатор клиента"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Клиент удалён"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.CustomerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadDocument godoc
// @Summary Загрузка документа сотрудником
// @Tags Customers
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param file formData file true "Файл документа"
// @Param documentType formData string false "Тип документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Document
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id}/documents [post]
func (h *CustomerHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	file, err := readUploadedFile(w, r, h.maxRequestBytes)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	document, err := h.CustomerService.UploadDocument(r.Context(), auth, chi.URLParam(r, "id"), file)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, document)
}

// DeleteDocument godoc
// @Summary Удаление документа клиента
// @Tags Customers
// @Param id path string true "Идентификатор клиента"
// @Param documentId path string true "Идентификатор документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Документ удалён"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id}/documents/{documentId} [delete]
func (h *CustomerHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.CustomerService.DeleteDocument(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "documentId")); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RenameDocument godoc
// @Summary Переименование документа
// @Tags Customers
// @Accept json
// @Param id path string true "Идентификатор клиента"
// @Param documentId path string true "Идентификатор документа"
// @Param body body requestresponse.RenameDocumentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Название обновлено"
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id}/documents/{documentId} [patch]
func (h *CustomerHandler) RenameDocument(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RenameDocumentRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	err := h.CustomerService.RenameDocument(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "documentId"), req.CustomTitle)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DocumentURL godoc
// @Summary Свежий подписанный URL документа
// @Tags Customers
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param documentId path string true "Идентификатор документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.SignedURL
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/customers/{id}/documents/{documentId}/url [get]
func (h *CustomerHandler) DocumentURL(w http.ResponseWriter, r *http.Request) {
	signed, err := h.CustomerService.DocumentURL(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "documentId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, signed)
}
