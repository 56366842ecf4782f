package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shareLinkCols = []string{"id", "customer_id", "created_by", "created_at", "expires_at", "access_count", "max_access", "is_active", "permissions", "documents"}

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, mock
}

func TestShareLinkRepository_ConsumeAccess(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("usable link is incremented in one statement", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := repository.NewShareLinkRepository(database)

		rows := sqlmock.NewRows(shareLinkCols).AddRow(
			"abc", "c1", "u1", now.Add(-time.Hour), now.Add(time.Hour), 1, int64(2), true,
			[]byte(`{"viewPersonalData":true}`), []byte(`[{"id":"d1","fileName":"rg.pdf"}]`),
		)
		mock.ExpectQuery(regexp.QuoteMeta("SET access_count = access_count + 1")).
			WithArgs("abc", now).
			WillReturnRows(rows)

		link, consumed, err := repo.ConsumeAccess(ctx, "abc", now)
		require.NoError(t, err)
		assert.True(t, consumed)
		assert.Equal(t, 1, link.AccessCount)
		require.NotNil(t, link.MaxAccess)
		assert.Equal(t, 2, *link.MaxAccess)
		assert.True(t, link.Permissions.ViewPersonalData)
		assert.True(t, link.Documents.Contains("d1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exhausted link returns current state", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := repository.NewShareLinkRepository(database)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE shareable_links")).
			WithArgs("abc", now).
			WillReturnRows(sqlmock.NewRows(shareLinkCols))
		mock.ExpectQuery(regexp.QuoteMeta("FROM shareable_links WHERE id = $1")).
			WithArgs("abc").
			WillReturnRows(sqlmock.NewRows(shareLinkCols).AddRow(
				"abc", "c1", "u1", now.Add(-time.Hour), now.Add(time.Hour), 2, int64(2), true, []byte(`{}`), []byte(`[]`),
			))

		link, consumed, err := repo.ConsumeAccess(ctx, "abc", now)
		require.NoError(t, err)
		assert.False(t, consumed)
		require.NotNil(t, link)
		assert.ErrorIs(t, link.CheckUsable(now), model.ErrQuotaExceeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing link", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		repo := repository.NewShareLinkRepository(database)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE shareable_links")).
			WillReturnRows(sqlmock.NewRows(shareLinkCols))
		mock.ExpectQuery(regexp.QuoteMeta("FROM shareable_links WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows(shareLinkCols))

		link, consumed, err := repo.ConsumeAccess(ctx, "nope", now)
		require.NoError(t, err)
		assert.False(t, consumed)
		assert.Nil(t, link)
	})
}

func TestShareLinkRepository_PurgeExpired(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewShareLinkRepository(database)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shareable_links WHERE expires_at < $1 OR NOT is_active")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.PurgeExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadLinkRepository_ReserveFileSlot(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUploadLinkRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("SET files_uploaded = files_uploaded + 1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET files_uploaded = files_uploaded + 1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ReserveFileSlot(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ReserveFileSlot(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_AppendDocument(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewCustomerRepository(database)
	doc := model.Document{ID: "d1", FileName: "rg.pdf", FilePath: "123/d1.pdf"}

	mock.ExpectExec(regexp.QuoteMeta("SET documents = documents || $2::jsonb")).
		WithArgs("c1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET documents = documents || $2::jsonb")).
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AppendDocument(context.Background(), "c1", doc))
	assert.ErrorIs(t, repo.AppendDocument(context.Background(), "missing", doc), model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetByIDNotFound(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewCustomerRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id = $1")).
		WithArgs("c404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "c404")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLeadRepository_GetByIDDecodesVariant(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewLeadRepository(database)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cols := []string{"id", "source", "status", "name", "cpf", "email", "phone", "city", "state", "details", "documents", "customer_id", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE id = $1")).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"l1", "agro", "new", "José", "", "", "", "Goiânia", "GO",
			[]byte(`{"crop":"soja","herdSize":300}`), []byte(`[]`), nil, now, now,
		))

	lead, err := repo.GetByID(context.Background(), database, "l1")
	require.NoError(t, err)
	agro, ok := lead.Details.(*model.AgroDetails)
	require.True(t, ok)
	assert.Equal(t, "soja", agro.Crop)
	assert.Equal(t, 300, *agro.HerdSize)
	assert.Nil(t, lead.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsersInvalidCursor(t *testing.T) {
	database, _ := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	_, _, err := repo.ListUsers(context.Background(), database, "not-a-time", 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestNewStores(t *testing.T) {
	database, _ := newMockDatabase(t)

	stores, err := repository.NewStores("postgres", database, nil)
	require.NoError(t, err)
	assert.IsType(t, &repository.ShareLinkRepository{}, stores.ShareLinks)

	_, err = repository.NewStores("mongo", database, nil)
	assert.Error(t, err)

	_, err = repository.NewStores("sqlite", database, nil)
	assert.Error(t, err)
}

func TestJWTRepository_FindByUUID(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewJWTRepository(database)
	expire := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM refresh_tokens WHERE uuid = $1`)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "user_uuid", "token_hash", "expire_at", "used", "user_agent", "ip_address", "created_at", "revoked_at"}).
			AddRow("r1", "u1", "hash", expire, false, "agent", "10.0.0.1", expire.Add(-time.Hour), nil))

	token, err := repo.FindByUUID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserUUID)
	assert.Equal(t, expire, token.ExpireAt)
	assert.Nil(t, token.RevokedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM refresh_tokens WHERE uuid = $1`)).
		WithArgs("r404").
		WillReturnRows(sqlmock.NewRows([]string{"uuid"}))

	_, err = repo.FindByUUID(context.Background(), "r404")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_MarkUsedTwice(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewJWTRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE refresh_tokens SET used = TRUE`)).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE refresh_tokens SET used = TRUE`)).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkRefreshTokenUsedByUUID(context.Background(), "r1"))
	assert.ErrorIs(t, repo.MarkRefreshTokenUsedByUUID(context.Background(), "r1"), model.ErrUnauthorized)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_PurgeExpired(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewJWTRepository(database)
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM refresh_tokens WHERE expire_at < $1 OR used = TRUE`)).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.PurgeExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
