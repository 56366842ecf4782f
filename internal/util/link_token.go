package util

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// LinkTokenLength : длина публичного идентификатора ссылки в символах
const LinkTokenLength = 32

// generateRandomToken : генерирует случайный токен длиной length символов
func generateRandomToken(length int) (string, error) {
	byteLength := (length + 1) / 2 // hex: 1 байт = 2 символа
	bytes := make([]byte, byteLength)

	if _, err := rand.Read(bytes); err != nil {
		return "", LogError("[util] ошибка генерации токена", err)
	}

	return hex.EncodeToString(bytes)[:length], nil
}

// GenerateUniqueToken : повторяет генерацию, пока exists не подтвердит уникальность
func GenerateUniqueToken(ctx context.Context, length int, exists func(ctx context.Context, token string) (bool, error)) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		token, err := generateRandomToken(length)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, token)
		if err != nil {
			return "", LogError("[util] ошибка проверки токена", err)
		}
		if !taken {
			return token, nil
		}
	}

	return "", fmt.Errorf("[util] не удалось сгенерировать уникальный токен")
}
