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
)

const refreshTokenColumns = `uuid, user_uuid, token_hash, expire_at, used, user_agent, ip_address, created_at, revoked_at`

// JWTRepository : refresh-токены сотрудников
type JWTRepository struct {
	*config.Database
}

func NewJWTRepository(database *config.Database) *JWTRepository {
	return &JWTRepository{database}
}

func (r *JWTRepository) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (uuid, user_uuid, token_hash, expire_at, used, user_agent, ip_address)
		VALUES (:uuid, :user_uuid, :token_hash, :expire_at, :used, :user_agent, :ip_address)`

	if _, err := r.DB.NamedExecContext(ctx, query, refreshToken); err != nil {
		return util.LogError("ошибка сохранения refresh токена", err)
	}
	return nil
}

// MarkRefreshTokenUsedByUUID : токен можно погасить только один раз
func (r *JWTRepository) MarkRefreshTokenUsedByUUID(ctx context.Context, refreshTokenUUID string) error {
	query := `UPDATE refresh_tokens SET used = TRUE, revoked_at = now() WHERE uuid = $1 AND used = FALSE`

	result, err := r.DB.ExecContext(ctx, query, refreshTokenUUID)
	if err != nil {
		return util.LogError("не удалось погасить refresh токен", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return util.LogError("не удалось проверить, погашен ли токен", err)
	}
	if rows == 0 {
		return fmt.Errorf("токен %s не найден или уже использован: %w", refreshTokenUUID, model.ErrUnauthorized)
	}
	return nil
}

func (r *JWTRepository) FindByUUID(ctx context.Context, refreshTokenUUID string) (*model.RefreshToken, error) {
	var token model.RefreshToken
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE uuid = $1`

	if err := r.DB.GetContext(ctx, &token, query, refreshTokenUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("токен %s: %w", refreshTokenUUID, model.ErrUnauthorized)
		}
		return nil, util.LogError("ошибка чтения refresh токена", err)
	}
	return &token, nil
}

// RevokeAllForUser : гасит все активные сессии сотрудника, например после смены пароля
func (r *JWTRepository) RevokeAllForUser(ctx context.Context, userUUID string) (int64, error) {
	query := `UPDATE refresh_tokens SET used = TRUE, revoked_at = now() WHERE user_uuid = $1 AND used = FALSE`

	result, err := r.DB.ExecContext(ctx, query, userUUID)
	if err != nil {
		return 0, util.LogError("не удалось отозвать сессии сотрудника", err)
	}
	return result.RowsAffected()
}

// PurgeExpired : удаляет просроченные и погашенные токены
func (r *JWTRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expire_at < $1 OR used = TRUE`

	result, err := r.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, util.LogError("ошибка очистки refresh токенов", err)
	}
	return result.RowsAffected()
}
