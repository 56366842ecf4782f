package ports

import (
	"context"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/security"
)

type JWTRepositoryInterface interface {
	FindByUUID(ctx context.Context, uuid string) (*model.RefreshToken, error)
	MarkRefreshTokenUsedByUUID(ctx context.Context, uuid string) error
	SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error
	RevokeAllForUser(ctx context.Context, userUUID string) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type JWTServiceInterface interface {
	GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error)
	ValidateJWT(tokenString string, secret []byte) (*security.Claims, error)
}
