package handler

import (
	"errors"
	"net/http"

	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

// Сообщения для анонимных получателей ссылок, без деталей хранилища
const (
	publicLinkMessage     = "link expired or not found"
	publicInternalMessage = "try again"
)

// statusFor : вид ошибки сервиса -> HTTP-статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrExpired):
		return http.StatusGone
	case errors.Is(err, model.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrUnsupportedType),
		errors.Is(err, model.ErrTooLarge),
		errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendServiceError : ответ для сотрудников, текст ошибки видим кроме 500
func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		util.Logger.Error("ошибка обработки запроса",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		util.HandleError(w, "внутренняя ошибка сервера", status)
		return
	}

	util.Logger.Info("запрос отклонён",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	util.HandleError(w, err.Error(), status)
}

// sendPublicError : ответ публичных эндпоинтов ссылок. Статус сохраняется,
// текст заменяется общим
func sendPublicError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound, http.StatusGone, http.StatusTooManyRequests, http.StatusForbidden:
		util.Logger.Info("публичная ссылка отклонена",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
		util.HandleError(w, publicLinkMessage, status)
	case http.StatusBadRequest:
		util.HandleError(w, publicMessageForInput(err), status)
	default:
		util.Logger.Error("ошибка публичного запроса",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		util.HandleError(w, publicInternalMessage, status)
	}
}

func publicMessageForInput(err error) string {
	switch {
	case errors.Is(err, model.ErrUnsupportedType):
		return "file type not allowed"
	case errors.Is(err, model.ErrTooLarge):
		return "file too large"
	default:
		return "invalid request"
	}
}
