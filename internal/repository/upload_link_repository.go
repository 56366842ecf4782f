package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const uploadLinkColumns = `id, customer_id, customer_name, customer_cpf, created_by, created_at, expires_at,
	access_count, max_access, is_active, allowed_document_types, max_file_size, max_files, files_uploaded`

type UploadLinkRepository struct {
	*config.Database
}

func NewUploadLinkRepository(database *config.Database) *UploadLinkRepository {
	return &UploadLinkRepository{database}
}

// Create : сохраняет новую ссылку на загрузку
func (r *UploadLinkRepository) Create(ctx context.Context, link *model.CustomerUploadLink) error {
	query := `
	INSERT INTO customer_upload_links (` + uploadLinkColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(ctx, query,
		link.ID,
		link.CustomerID,
		link.CustomerName,
		link.CustomerCPF,
		link.CreatedBy,
		link.CreatedAt,
		link.ExpiresAt,
		link.AccessCount,
		link.MaxAccess,
		link.IsActive,
		link.AllowedDocumentTypes,
		link.MaxFileSize,
		link.MaxFiles,
		link.FilesUploaded,
	)
	if err != nil {
		return util.LogError("[UploadLinkRepo] ошибка вставки ссылки в БД", err, zap.String("link_id", link.ID))
	}

	return nil
}

func (r *UploadLinkRepository) GetByID(ctx context.Context, id string) (*model.CustomerUploadLink, error) {
	query := `SELECT ` + uploadLinkColumns + ` FROM customer_upload_links WHERE id = $1`

	var link model.CustomerUploadLink
	err := sqlx.GetContext(ctx, r.DB, &link, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ссылка на загрузку %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[UploadLinkRepo] не удалось получить ссылку", err, zap.String("link_id", id))
	}

	return &link, nil
}

// ConsumeAccess : см. ShareLinkRepository.ConsumeAccess
func (r *UploadLinkRepository) ConsumeAccess(ctx context.Context, id string, now time.Time) (*model.CustomerUploadLink, bool, error) {
	query := `
	UPDATE customer_upload_links
	SET access_count = access_count + 1
	WHERE id = $1
	  AND is_active
	  AND expires_at > $2
	  AND (max_access IS NULL OR access_count < max_access)
	RETURNING ` + uploadLinkColumns

	var link model.CustomerUploadLink
	err := sqlx.GetContext(ctx, r.DB, &link, query, id, now)
	if err == nil {
		return &link, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, util.LogError("[UploadLinkRepo] не удалось зафиксировать обращение", err, zap.String("link_id", id))
	}

	current, err := r.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}

// ReserveFileSlot : занимает место под файл до записи в хранилище,
// так параллельные загрузки не превысят max_files
func (r *UploadLinkRepository) ReserveFileSlot(ctx context.Context, id string) (bool, error) {
	query := `
	UPDATE customer_upload_links
	SET files_uploaded = files_uploaded + 1
	WHERE id = $1 AND files_uploaded < max_files
	`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, util.LogError("[UploadLinkRepo] не удалось зарезервировать место под файл", err, zap.String("link_id", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[UploadLinkRepo] не удалось проверить резервирование", err)
	}
	return rowsAffected == 1, nil
}

// ReleaseFileSlot : откат резервирования, если файл не был прикреплён
func (r *UploadLinkRepository) ReleaseFileSlot(ctx context.Context, id string) error {
	query := `
	UPDATE customer_upload_links
	SET files_uploaded = GREATEST(files_uploaded - 1, 0)
	WHERE id = $1
	`
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return util.LogError("[UploadLinkRepo] не удалось освободить место под файл", err, zap.String("link_id", id))
	}
	return nil
}

func (r *UploadLinkRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE customer_upload_links SET is_active = FALSE WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return util.LogError("[UploadLinkRepo] не удалось деактивировать ссылку", err, zap.String("link_id", id))
	}
	return nil
}

func (r *UploadLinkRepository) ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.CustomerUploadLink, error) {
	query := `
	SELECT ` + uploadLinkColumns + `
	FROM customer_upload_links
	WHERE created_by = $1
	ORDER BY created_at DESC, id ASC
	LIMIT $2 OFFSET $3
	`

	links := make([]*model.CustomerUploadLink, 0, limit)
	err := sqlx.SelectContext(ctx, r.DB, &links, query, userID, limit, offset(page, limit))
	if err != nil {
		return nil, util.LogError("[UploadLinkRepo] не удалось получить список ссылок", err)
	}
	return links, nil
}

func (r *UploadLinkRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM customer_upload_links WHERE expires_at < $1 OR NOT is_active`

	result, err := r.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, util.LogError("[UploadLinkRepo] не удалось удалить истёкшие ссылки", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[UploadLinkRepo] не удалось получить число удалённых ссылок", err)
	}
	return deleted, nil
}

func (r *UploadLinkRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customer_upload_links WHERE id = $1)`
	if err := sqlx.GetContext(ctx, r.DB, &exists, query, id); err != nil {
		return false, util.LogError("[UploadLinkRepo] ошибка проверки существования ссылки", err)
	}
	return exists, nil
}
