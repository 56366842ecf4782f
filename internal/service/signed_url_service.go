package service

import (
	"context"
	"fmt"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxParallelSignatures : предел одновременных запросов к хранилищу в download-all
const maxParallelSignatures = 8

type SignedURLService struct {
	storage    ports.ObjectStorage
	clock      util.Clock
	defaultTTL time.Duration
	minTTL     time.Duration
}

func NewSignedURLService(storage ports.ObjectStorage, clock util.Clock, defaultTTL, minTTL time.Duration) *SignedURLService {
	return &SignedURLService{
		storage:    storage,
		clock:      clock,
		defaultTTL: defaultTTL,
		minTTL:     minTTL,
	}
}

// Issue : подписанная ссылка на объект. ttl <= 0 означает TTL по умолчанию.
// Если хранилище не смогло подписать, отдаётся публичный адрес бакета, когда он настроен
func (s *SignedURLService) Issue(ctx context.Context, filePath string, ttl time.Duration) (*model.SignedURL, error) {
	if filePath == "" {
		return nil, fmt.Errorf("пустой путь к файлу: %w", model.ErrInvalidInput)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.clock.Now()
	signed, err := s.storage.PresignGet(ctx, filePath, ttl)
	if err != nil {
		if public := s.storage.PublicURL(filePath); public != "" {
			util.Logger.Warn("[SignedURLService] подпись не удалась, отдаём публичный URL",
				zap.String("file_path", filePath), zap.Error(err))
			return &model.SignedURL{URL: public, ExpiresAt: now.Add(ttl), ExpiresIn: int(ttl / time.Second)}, nil
		}
		return nil, fmt.Errorf("не удалось подписать %s: %v: %w", filePath, err, model.ErrStorage)
	}

	return &model.SignedURL{URL: signed, ExpiresAt: now.Add(ttl), ExpiresIn: int(ttl / time.Second)}, nil
}

// IssueForGrant : TTL = max(minTTL, grantExpiresAt - now), ссылка на документ не живёт дольше гранта,
// кроме нижней границы minTTL
func (s *SignedURLService) IssueForGrant(ctx context.Context, filePath string, grantExpiresAt time.Time) (*model.SignedURL, error) {
	ttl, err := s.grantTTL(grantExpiresAt)
	if err != nil {
		return nil, err
	}
	return s.Issue(ctx, filePath, ttl)
}

// IssueForDocuments : подписывает документы параллельно, порядок сохраняется
func (s *SignedURLService) IssueForDocuments(ctx context.Context, documents []model.SharedDocument, grantExpiresAt time.Time) ([]model.SharedDocument, error) {
	ttl, err := s.grantTTL(grantExpiresAt)
	if err != nil {
		return nil, err
	}

	signed := make([]model.SharedDocument, len(documents))
	copy(signed, documents)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelSignatures)
	for i := range signed {
		doc := &signed[i]
		g.Go(func() error {
			url, err := s.Issue(gctx, doc.FilePath, ttl)
			if err != nil {
				return err
			}
			doc.SignedURL = url.URL
			doc.ExpiresIn = url.ExpiresIn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return signed, nil
}

func (s *SignedURLService) grantTTL(grantExpiresAt time.Time) (time.Duration, error) {
	remaining := grantExpiresAt.Sub(s.clock.Now())
	if remaining <= 0 {
		return 0, fmt.Errorf("грант истёк %s: %w", grantExpiresAt.Format(time.RFC3339), model.ErrExpired)
	}
	if remaining < s.minTTL {
		return s.minTTL, nil
	}
	return remaining.Truncate(time.Second), nil
}
