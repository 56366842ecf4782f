package handler

import (
	"fmt"
	"net/http"
	"strings"

	"crm-web-server/internal/model"
	"crm-web-server/internal/model/requestresponse"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	ports.JWTServiceInterface
	secretKey []byte
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	jwtServiceInterface ports.JWTServiceInterface,
	secretKey string,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		jwtServiceInterface,
		[]byte(secretKey)}
}

// Login godoc
// @Summary Аутентификация сотрудника
// @Description Выдаёт пару access и refresh токенов по email и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	tokens, err := h.AuthenticationService.Login(r.Context(), req.Email, req.Password, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.TokensResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.CurrentUserResponse{
		UserUUID: claims.UserUUID,
		IsAdmin:  claims.IsAdmin,
	})
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Обновляет пару токенов по действующему access и refresh токену, выданным вместе
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.TokensResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		sendServiceError(w, r, fmt.Errorf("пустой или неверный заголовок Authorization: %w", model.ErrUnauthorized))
		return
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	var req requestresponse.RefreshTokenRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	tokens, err := h.AuthenticationService.RefreshToken(r.Context(), r.UserAgent(), r.RemoteAddr, accessToken, req.RefreshToken)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.TokensResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает refresh-токен, которым подписан access-токен из URL.
// @Tags Authentication
// @Produce json
// @Param token path string true "Access-токен (JWT)"
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/{token} [delete]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, err := h.JWTServiceInterface.ValidateJWT(chi.URLParam(r, "token"), h.secretKey)
	if err != nil {
		sendServiceError(w, r, fmt.Errorf("невалидный токен: %w", model.ErrUnauthorized))
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), claims.RefreshTokenUUID); err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.LogoutResponse{
		RefreshTokenUUID: claims.RefreshTokenUUID,
		Revoked:          true,
	})
}
