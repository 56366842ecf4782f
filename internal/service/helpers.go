package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage : page >= 1, limit в пределах 1..maxPageLimit
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// validateGrantLifetime : общие проверки при создании гранта
func validateGrantLifetime(expiresInHours, maxExpiresInHours int, maxAccess *int) error {
	if expiresInHours < 1 {
		return fmt.Errorf("expiresInHours должно быть не меньше 1: %w", model.ErrInvalidInput)
	}
	if maxExpiresInHours > 0 && expiresInHours > maxExpiresInHours {
		return fmt.Errorf("expiresInHours не может превышать %d: %w", maxExpiresInHours, model.ErrInvalidInput)
	}
	if maxAccess != nil && *maxAccess < 1 {
		return fmt.Errorf("maxAccess должно быть не меньше 1: %w", model.ErrInvalidInput)
	}
	return nil
}

// classifyUnconsumed : причина, по которой атомарный инкремент не сработал
func classifyUnconsumed(grant *model.Grant, now time.Time) error {
	if err := grant.CheckUsable(now); err != nil {
		return err
	}
	// запись изменилась между UPDATE и чтением, считаем лимит исчерпанным
	return fmt.Errorf("ссылка %s: %w", grant.ID, model.ErrQuotaExceeded)
}

// documentStorer : запись файла в хранилище и построение метаданных документа
type documentStorer struct {
	storage ports.ObjectStorage
	signer  ports.SignedURLService
	clock   util.Clock
	ids     util.IDGenerator
}

// objectKey : <prefix>/<id><ext>, prefix обычно CPF клиента
func objectKey(prefix, documentID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%s/%s%s", prefix, documentID, ext)
}

// store : сначала байты в хранилище, прикрепление к записи делает вызывающий
func (d *documentStorer) store(ctx context.Context, prefix string, file *model.UploadedFile, contentType string) (model.Document, error) {
	documentID := d.ids.New()
	fileName := util.SanitizeFileName(file.FileName)
	key := objectKey(prefix, documentID, fileName)

	if err := d.storage.Upload(ctx, key, bytes.NewReader(file.Data), contentType); err != nil {
		return model.Document{}, fmt.Errorf("не удалось сохранить файл %s: %v: %w", fileName, err, model.ErrStorage)
	}

	doc := model.Document{
		ID:           documentID,
		FileName:     fileName,
		FilePath:     key,
		FileType:     contentType,
		FileSize:     file.Size(),
		DocumentType: util.SanitizeText(file.DocumentType),
		UploadedAt:   d.clock.Now(),
	}

	// fileUrl только кэш, ошибка подписи не мешает загрузке
	if signed, err := d.signer.Issue(ctx, key, 0); err == nil {
		doc.FileURL = signed.URL
	} else {
		util.Logger.Warn("не удалось получить URL загруженного файла", zap.String("file_path", key), zap.Error(err))
	}

	return doc, nil
}

// discard : удаление осиротевшего объекта, выполняется даже после отмены запроса
func (d *documentStorer) discard(ctx context.Context, key string) {
	if err := d.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
		util.Logger.Error("не удалось удалить осиротевший объект", zap.String("file_path", key), zap.Error(err))
	}
}

func storagePrefix(cpf, fallback string) string {
	if digits := util.OnlyDigits(cpf); digits != "" {
		return digits
	}
	return fallback
}
