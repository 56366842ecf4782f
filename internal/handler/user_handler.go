package handler

import (
	"net/http"
	"strings"

	"crm-web-server/internal/model/requestresponse"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация сотрудника
// @Description Создаёт сотрудника. Требуется токен администратора из config.yaml (admin.admin_token).
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} model.User
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Token, req.Email, req.Name, req.Password)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, user)
}

// GetUser godoc
// @Summary Информация о сотруднике
// @Description Доступна самому сотруднику и администратору.
// @Tags Users
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.User
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), auth, chi.URLParam(r, "uuid"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, user)
}

// UpdatePassword godoc
// @Summary Смена пароля
// @Description Доступна только владельцу учётной записи.
// @Tags Users
// @Accept json
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param body body requestresponse.UpdatePasswordRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UpdatePasswordResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid}/password [put]
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	auth, err := security.AuthContextFromRequest(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	var req requestresponse.UpdatePasswordRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	if err := h.UserService.UpdatePassword(r.Context(), auth, chi.URLParam(r, "uuid"), req.NewPassword); err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UpdatePasswordResponse{Updated: true})
}

// ListUsers godoc
// @Summary Список сотрудников
// @Description Cursor-based пагинация. Только с токеном администратора.
// @Tags Users
// @Produce json
// @Param cursor query string false "Курсор для пагинации"
// @Param limit query int false "Количество пользователей" default(20) minimum(1) maximum(100)
// @Param Authorization header string true "Bearer токен администратора"
// @Success 200 {object} requestresponse.ListUsersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	adminToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	users, nextCursor, err := h.UserService.ListUsers(r.Context(), adminToken, r.URL.Query().Get("cursor"), util.QueryInt(r, "limit", 20))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListUsersResponse{Users: users, NextCursor: nextCursor})
}
