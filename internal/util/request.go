package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"crm-web-server/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON : разбирает тело запроса и проверяет validate-теги.
// Любая ошибка оборачивает model.ErrInvalidInput
func DecodeJSON(r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("пустое тело запроса: %w", model.ErrInvalidInput)
		}
		return fmt.Errorf("неверный JSON: %v: %w", err, model.ErrInvalidInput)
	}
	return Validate(target)
}

func Validate(target interface{}) error {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%v: %w", err, model.ErrInvalidInput)
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("некорректные поля: %s: %w", strings.Join(fields, ", "), model.ErrInvalidInput)
}

// QueryInt : целое из query-параметра, def если параметр пуст или не число
func QueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
