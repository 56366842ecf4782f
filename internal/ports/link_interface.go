package ports

import (
	"context"
	"time"

	"crm-web-server/internal/model"
)

// ShareLinkRepository : хранилище ссылок на просмотр (Postgres или MongoDB)
type ShareLinkRepository interface {
	Create(ctx context.Context, link *model.ShareableLink) error
	GetByID(ctx context.Context, id string) (*model.ShareableLink, error)
	// ConsumeAccess : атомарная проверка пригодности и инкремент accessCount.
	// Если ссылка непригодна, возвращает её текущее состояние и consumed=false,
	// если ссылки нет, возвращает nil
	ConsumeAccess(ctx context.Context, id string, now time.Time) (link *model.ShareableLink, consumed bool, err error)
	Deactivate(ctx context.Context, id string) error
	ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.ShareableLink, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// UploadLinkRepository : хранилище ссылок на загрузку
type UploadLinkRepository interface {
	Create(ctx context.Context, link *model.CustomerUploadLink) error
	GetByID(ctx context.Context, id string) (*model.CustomerUploadLink, error)
	ConsumeAccess(ctx context.Context, id string, now time.Time) (link *model.CustomerUploadLink, consumed bool, err error)
	// ReserveFileSlot : files_uploaded + 1, только если files_uploaded < max_files
	ReserveFileSlot(ctx context.Context, id string) (bool, error)
	ReleaseFileSlot(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.CustomerUploadLink, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type SignedURLService interface {
	Issue(ctx context.Context, filePath string, ttl time.Duration) (*model.SignedURL, error)
	IssueForGrant(ctx context.Context, filePath string, grantExpiresAt time.Time) (*model.SignedURL, error)
	IssueForDocuments(ctx context.Context, documents []model.SharedDocument, grantExpiresAt time.Time) ([]model.SharedDocument, error)
}

type ShareLinkService interface {
	Create(ctx context.Context, auth model.AuthContext, spec model.ShareLinkSpec) (*model.ShareableLink, error)
	Resolve(ctx context.Context, linkID string) (*model.ResolvedShareLink, error)
	View(ctx context.Context, linkID string) (*model.SharedView, error)
	DownloadAll(ctx context.Context, linkID string) (*model.DownloadBundle, error)
	Deactivate(ctx context.Context, auth model.AuthContext, linkID string) error
	ListForUser(ctx context.Context, auth model.AuthContext, page, limit int) ([]*model.ShareableLink, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type UploadLinkService interface {
	Create(ctx context.Context, auth model.AuthContext, spec model.UploadLinkSpec) (*model.CustomerUploadLink, error)
	Resolve(ctx context.Context, linkID string) (*model.ResolvedUploadLink, error)
	CheckUploadable(ctx context.Context, linkID string) error
	Upload(ctx context.Context, linkID string, file *model.UploadedFile) (*model.UploadResult, error)
	Deactivate(ctx context.Context, auth model.AuthContext, linkID string) error
	ListForUser(ctx context.Context, auth model.AuthContext, page, limit int) ([]*model.CustomerUploadLink, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
