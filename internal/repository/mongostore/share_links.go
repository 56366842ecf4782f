package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ShareLinkStore : ссылки на просмотр в коллекции shareableLinks
type ShareLinkStore struct {
	collection *mongo.Collection
}

func NewShareLinkStore(db *mongo.Database) *ShareLinkStore {
	return &ShareLinkStore{collection: db.Collection(ShareLinksCollection)}
}

func (s *ShareLinkStore) Create(ctx context.Context, link *model.ShareableLink) error {
	if link.Documents == nil {
		link.Documents = model.LinkDocumentList{}
	}
	if _, err := s.collection.InsertOne(ctx, link); err != nil {
		return util.LogError("[ShareLinkStore] ошибка вставки ссылки", err, zap.String("link_id", link.ID))
	}
	return nil
}

func (s *ShareLinkStore) GetByID(ctx context.Context, id string) (*model.ShareableLink, error) {
	var link model.ShareableLink
	err := s.collection.FindOne(ctx, byID(id)).Decode(&link)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("ссылка %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[ShareLinkStore] не удалось получить ссылку", err, zap.String("link_id", id))
	}
	return &link, nil
}

// ConsumeAccess : FindOneAndUpdate с условием пригодности, инкремент атомарен
func (s *ShareLinkStore) ConsumeAccess(ctx context.Context, id string, now time.Time) (*model.ShareableLink, bool, error) {
	var link model.ShareableLink
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.collection.FindOneAndUpdate(ctx, usableFilter(id, now), incrementAccess(), opts).Decode(&link)
	if err == nil {
		return &link, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, util.LogError("[ShareLinkStore] не удалось зафиксировать обращение", err, zap.String("link_id", id))
	}

	current, err := s.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}

func (s *ShareLinkStore) Deactivate(ctx context.Context, id string) error {
	if _, err := s.collection.UpdateOne(ctx, byID(id), deactivate()); err != nil {
		return util.LogError("[ShareLinkStore] не удалось деактивировать ссылку", err, zap.String("link_id", id))
	}
	return nil
}

func (s *ShareLinkStore) ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.ShareableLink, error) {
	cursor, err := s.collection.Find(ctx, byCreator(userID), pageOptions(page, limit))
	if err != nil {
		return nil, util.LogError("[ShareLinkStore] не удалось получить список ссылок", err)
	}
	defer cursor.Close(ctx)

	links := make([]*model.ShareableLink, 0, limit)
	if err := cursor.All(ctx, &links); err != nil {
		return nil, util.LogError("[ShareLinkStore] не удалось прочитать список ссылок", err)
	}
	return links, nil
}

func (s *ShareLinkStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, purgeFilter(now))
	if err != nil {
		return 0, util.LogError("[ShareLinkStore] не удалось удалить истёкшие ссылки", err)
	}
	return result.DeletedCount, nil
}

func (s *ShareLinkStore) Exists(ctx context.Context, id string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, byID(id), options.Count().SetLimit(1))
	if err != nil {
		return false, util.LogError("[ShareLinkStore] ошибка проверки существования ссылки", err)
	}
	return count > 0, nil
}
