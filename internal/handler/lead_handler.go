package handler

import (
	"net/http"

	"crm-web-server/internal/model"
	"crm-web-server/internal/model/requestresponse"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type LeadHandler struct {
	ports.LeadService
	maxRequestBytes int64
}

func NewLeadHandler(leadService ports.LeadService, maxRequestBytes int64) *LeadHandler {
	return &LeadHandler{leadService, maxRequestBytes}
}

// SubmitLead godoc
// @Summary Публичная заявка
// @Description Поле details разбирается по схеме источника, поля другого источника отклоняются.
// @Tags Leads
// @Accept json
// @Produce json
// @Param body body requestresponse.LeadRequest true "Тело запроса"
// @Success 201 {object} model.Lead
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 429 {object} requestresponse.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/leads [post]
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LeadRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendPublicError(w, r, err)
		return
	}

	lead, err := req.ToModel()
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	created, err := h.LeadService.Submit(r.Context(), lead)
	if err != nil {
		sendPublicError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, created)
}

// ListLeads godoc
// @Summary Список заявок
// @Tags Leads
// @Produce json
// @Param source query string false "Источник" Enums(agro, credito, consultoria, imobiliario, geral)
// @Param status query string false "Статус" Enums(new, contacted, converted, discarded)
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(20) maximum(100)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} model.Lead
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/leads [get]
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	filter := model.LeadFilter{
		Source: model.LeadSource(r.URL.Query().Get("source")),
		Status: model.LeadStatus(r.URL.Query().Get("status")),
	}

	leads, err := h.LeadService.List(r.Context(), filter, util.QueryInt(r, "page", 1), util.QueryInt(r, "limit", 20))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, leads)
}

// GetLead godoc
// @Summary Заявка по идентификатору
// @Tags Leads
// @Produce json
// @Param id path string true "Идентификатор заявки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Lead
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/leads/{id} [get]
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.LeadService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, lead)
}

// UpdateStatus godoc
// @Summary Смена статуса заявки
// @Description Статус converted выставляется только конвертацией.
// @Tags Leads
// @Accept json
// @Param id path string true "Идентификатор заявки"
// @Param body body requestresponse.UpdateLeadStatusRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Статус обновлён"
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/leads/{id}/status [put]
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateLeadStatusRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	if err := h.LeadService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), model.LeadStatus(req.Status)); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteLead godoc
// @Summary Удаление заявки
// @Tags Leads
// @Param id path string true "Идентификатор заявки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Заявка удалена"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/leads/{id} [delete]
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.LeadService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadDocument godoc
// @Summary Документ к заявке
// @Tags Leads
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Идентификатор заявки"
// @Param file formData file true "Файл документа"
// @Param documentType formData string false "Тип документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Document
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/leads/{id}/documents [post]
func (h *LeadHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	file, err := readUploadedFile(w, r, h.maxRequestBytes)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	document, err := h.LeadService.UploadDocument(r.Context(), chi.URLParam(r, "id"), file)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, document)
}

// ConvertLead godoc
// @Summary Конвертация заявки в клиента
// @Description Создаёт клиента с данными и документами заявки, заявка получает статус converted.
// @Tags Leads
// @Produce json
// @Param id path string true "Идентификатор заявки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Customer
// @Failure 400 {object} requestresponse.ErrorResponse "Заявка уже конвертирована или без CPF"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/leads/{id}/convert [post]
func (h *LeadHandler) ConvertLead(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	customer, err := h.LeadService.Convert(r.Context(), auth, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, customer)
}
