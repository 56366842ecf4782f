package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/service"
	"crm-web-server/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestSigner() (*service.SignedURLService, *MockStorage, *testutil.StubClock) {
	storage := new(MockStorage)
	clock := testutil.NewStubClock(testNow)
	return service.NewSignedURLService(storage, clock, time.Hour, 5*time.Minute), storage, clock
}

func TestSignedURLService_IssueForGrant(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		grantExpires  time.Time
		expectTTL     time.Duration
		expectSeconds int
	}{
		{
			name:          "short grant is clamped to the floor",
			grantExpires:  testNow.Add(2 * time.Minute),
			expectTTL:     5 * time.Minute,
			expectSeconds: 300,
		},
		{
			name:          "long grant uses remaining time",
			grantExpires:  testNow.Add(time.Hour),
			expectTTL:     time.Hour,
			expectSeconds: 3600,
		},
		{
			name:          "sub-second remainder is truncated",
			grantExpires:  testNow.Add(10*time.Minute + 700*time.Millisecond),
			expectTTL:     10 * time.Minute,
			expectSeconds: 600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, storage, _ := newTestSigner()
			storage.On("PresignGet", ctx, "123/doc.pdf", tt.expectTTL).Return("https://signed/doc", nil)

			url, err := signer.IssueForGrant(ctx, "123/doc.pdf", tt.grantExpires)

			require.NoError(t, err)
			assert.Equal(t, "https://signed/doc", url.URL)
			assert.Equal(t, tt.expectSeconds, url.ExpiresIn)
			assert.Equal(t, testNow.Add(tt.expectTTL), url.ExpiresAt)
			storage.AssertExpectations(t)
		})
	}
}

func TestSignedURLService_IssueForGrant_Expired(t *testing.T) {
	signer, storage, _ := newTestSigner()

	_, err := signer.IssueForGrant(context.Background(), "123/doc.pdf", testNow.Add(-time.Second))

	assert.ErrorIs(t, err, model.ErrExpired)
	storage.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignedURLService_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("default ttl", func(t *testing.T) {
		signer, storage, _ := newTestSigner()
		storage.On("PresignGet", ctx, "a.pdf", time.Hour).Return("https://signed/a", nil)

		url, err := signer.Issue(ctx, "a.pdf", 0)
		require.NoError(t, err)
		assert.Equal(t, 3600, url.ExpiresIn)
	})

	t.Run("public url fallback", func(t *testing.T) {
		signer, storage, _ := newTestSigner()
		storage.On("PresignGet", ctx, "a.pdf", time.Hour).Return("", errors.New("boom"))
		storage.On("PublicURL", "a.pdf").Return("https://public/a.pdf")

		url, err := signer.Issue(ctx, "a.pdf", 0)
		require.NoError(t, err)
		assert.Equal(t, "https://public/a.pdf", url.URL)
	})

	t.Run("storage error without public bucket", func(t *testing.T) {
		signer, storage, _ := newTestSigner()
		storage.On("PresignGet", ctx, "a.pdf", time.Hour).Return("", errors.New("boom"))
		storage.On("PublicURL", "a.pdf").Return("")

		_, err := signer.Issue(ctx, "a.pdf", 0)
		assert.ErrorIs(t, err, model.ErrStorage)
	})

	t.Run("empty path", func(t *testing.T) {
		signer, _, _ := newTestSigner()
		_, err := signer.Issue(ctx, "", 0)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestSignedURLService_IssueForDocuments_PreservesOrder(t *testing.T) {
	signer, storage, _ := newTestSigner()
	expires := testNow.Add(30 * time.Minute)

	docs := []model.SharedDocument{
		{ID: "d3", FilePath: "c/3.pdf"},
		{ID: "d1", FilePath: "c/1.pdf"},
		{ID: "d2", FilePath: "c/2.pdf"},
	}
	for _, d := range docs {
		storage.On("PresignGet", mock.Anything, d.FilePath, 30*time.Minute).Return("https://signed/"+d.ID, nil)
	}

	signed, err := signer.IssueForDocuments(context.Background(), docs, expires)

	require.NoError(t, err)
	require.Len(t, signed, 3)
	for i, d := range docs {
		assert.Equal(t, d.ID, signed[i].ID)
		assert.Equal(t, "https://signed/"+d.ID, signed[i].SignedURL)
		assert.Equal(t, 1800, signed[i].ExpiresIn)
	}
	assert.Empty(t, docs[0].SignedURL, "входной срез не изменяется")
}
