package model

import "errors"

// Виды ошибок сервисного слоя. Сервисы оборачивают их через %w,
// HTTP-слой сопоставляет через errors.Is.
var (
	ErrNotFound        = errors.New("не найдено")
	ErrExpired         = errors.New("срок действия истёк или ссылка деактивирована")
	ErrQuotaExceeded   = errors.New("лимит исчерпан")
	ErrForbidden       = errors.New("доступ запрещён")
	ErrUnsupportedType = errors.New("тип файла не разрешён")
	ErrTooLarge        = errors.New("файл превышает допустимый размер")
	ErrStorage         = errors.New("ошибка файлового хранилища")
	ErrInvalidInput    = errors.New("неверные данные")
	ErrUnauthorized    = errors.New("пользователь не авторизован")
)
