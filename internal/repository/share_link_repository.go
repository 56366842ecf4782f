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

const shareLinkColumns = `id, customer_id, created_by, created_at, expires_at, access_count, max_access, is_active, permissions, documents`

type ShareLinkRepository struct {
	*config.Database
}

func NewShareLinkRepository(database *config.Database) *ShareLinkRepository {
	return &ShareLinkRepository{database}
}

// Create : сохраняет новую ссылку на просмотр
func (r *ShareLinkRepository) Create(ctx context.Context, link *model.ShareableLink) error {
	query := `
	INSERT INTO shareable_links (` + shareLinkColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		link.ID,
		link.CustomerID,
		link.CreatedBy,
		link.CreatedAt,
		link.ExpiresAt,
		link.AccessCount,
		link.MaxAccess,
		link.IsActive,
		link.Permissions,
		link.Documents,
	)
	if err != nil {
		return util.LogError("[ShareLinkRepo] ошибка вставки ссылки в БД", err, zap.String("link_id", link.ID))
	}

	return nil
}

// GetByID : ищет ссылку по публичному идентификатору
func (r *ShareLinkRepository) GetByID(ctx context.Context, id string) (*model.ShareableLink, error) {
	query := `SELECT ` + shareLinkColumns + ` FROM shareable_links WHERE id = $1`

	var link model.ShareableLink
	err := sqlx.GetContext(ctx, r.DB, &link, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ссылка %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[ShareLinkRepo] не удалось получить ссылку", err, zap.String("link_id", id))
	}

	return &link, nil
}

// ConsumeAccess : проверка пригодности и инкремент выполняются одним UPDATE,
// два параллельных запроса не могут израсходовать одну и ту же единицу лимита
func (r *ShareLinkRepository) ConsumeAccess(ctx context.Context, id string, now time.Time) (*model.ShareableLink, bool, error) {
	query := `
	UPDATE shareable_links
	SET access_count = access_count + 1
	WHERE id = $1
	  AND is_active
	  AND expires_at > $2
	  AND (max_access IS NULL OR access_count < max_access)
	RETURNING ` + shareLinkColumns

	var link model.ShareableLink
	err := sqlx.GetContext(ctx, r.DB, &link, query, id, now)
	if err == nil {
		return &link, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, util.LogError("[ShareLinkRepo] не удалось зафиксировать обращение", err, zap.String("link_id", id))
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

// Deactivate : повторный вызов ничего не меняет
func (r *ShareLinkRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE shareable_links SET is_active = FALSE WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return util.LogError("[ShareLinkRepo] не удалось деактивировать ссылку", err, zap.String("link_id", id))
	}
	return nil
}

// ListByCreator : ссылки сотрудника, новые первыми
func (r *ShareLinkRepository) ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.ShareableLink, error) {
	query := `
	SELECT ` + shareLinkColumns + `
	FROM shareable_links
	WHERE created_by = $1
	ORDER BY created_at DESC, id ASC
	LIMIT $2 OFFSET $3
	`

	links := make([]*model.ShareableLink, 0, limit)
	err := sqlx.SelectContext(ctx, r.DB, &links, query, userID, limit, offset(page, limit))
	if err != nil {
		return nil, util.LogError("[ShareLinkRepo] не удалось получить список ссылок", err)
	}
	return links, nil
}

// PurgeExpired : удаляет истёкшие и деактивированные ссылки
func (r *ShareLinkRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM shareable_links WHERE expires_at < $1 OR NOT is_active`

	result, err := r.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, util.LogError("[ShareLinkRepo] не удалось удалить истёкшие ссылки", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[ShareLinkRepo] не удалось получить число удалённых ссылок", err)
	}
	return deleted, nil
}

func (r *ShareLinkRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM shareable_links WHERE id = $1)`
	if err := sqlx.GetContext(ctx, r.DB, &exists, query, id); err != nil {
		return false, util.LogError("[ShareLinkRepo] ошибка проверки существования ссылки", err)
	}
	return exists, nil
}

func offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
