package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// UploadLinkStore : ссылки на загрузку в коллекции customerUploadLinks
type UploadLinkStore struct {
	collection *mongo.Collection
}

func NewUploadLinkStore(db *mongo.Database) *UploadLinkStore {
	return &UploadLinkStore{collection: db.Collection(UploadLinksCollection)}
}

func (s *UploadLinkStore) Create(ctx context.Context, link *model.CustomerUploadLink) error {
	if _, err := s.collection.InsertOne(ctx, link); err != nil {
		return util.LogError("[UploadLinkStore] ошибка вставки ссылки", err, zap.String("link_id", link.ID))
	}
	return nil
}

func (s *UploadLinkStore) GetByID(ctx context.Context, id string) (*model.CustomerUploadLink, error) {
	var link model.CustomerUploadLink
	err := s.collection.FindOne(ctx, byID(id)).Decode(&link)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("ссылка на загрузку %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[UploadLinkStore] не удалось получить ссылку", err, zap.String("link_id", id))
	}
	return &link, nil
}

func (s *UploadLinkStore) ConsumeAccess(ctx context.Context, id string, now time.Time) (*model.CustomerUploadLink, bool, error) {
	var link model.CustomerUploadLink
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.collection.FindOneAndUpdate(ctx, usableFilter(id, now), incrementAccess(), opts).Decode(&link)
	if err == nil {
		return &link, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, util.LogError("[UploadLinkStore] не удалось зафиксировать обращение", err, zap.String("link_id", id))
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

func (s *UploadLinkStore) ReserveFileSlot(ctx context.Context, id string) (bool, error) {
	result, err := s.collection.UpdateOne(ctx, freeSlotFilter(id), bson.M{"$inc": bson.M{"filesUploaded": 1}})
	if err != nil {
		return false, util.LogError("[UploadLinkStore] не удалось зарезервировать место под файл", err, zap.String("link_id", id))
	}
	return result.ModifiedCount == 1, nil
}

func (s *UploadLinkStore) ReleaseFileSlot(ctx context.Context, id string) error {
	filter := bson.M{"_id": id, "filesUploaded": bson.M{"$gt": 0}}
	if _, err := s.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"filesUploaded": -1}}); err != nil {
		return util.LogError("[UploadLinkStore] не удалось освободить место под файл", err, zap.String("link_id", id))
	}
	return nil
}

func (s *UploadLinkStore) Deactivate(ctx context.Context, id string) error {
	if _, err := s.collection.UpdateOne(ctx, byID(id), deactivate()); err != nil {
		return util.LogError("[UploadLinkStore] не удалось деактивировать ссылку", err, zap.String("link_id", id))
	}
	return nil
}

func (s *UploadLinkStore) ListByCreator(ctx context.Context, userID string, page, limit int) ([]*model.CustomerUploadLink, error) {
	cursor, err := s.collection.Find(ctx, byCreator(userID), pageOptions(page, limit))
	if err != nil {
		return nil, util.LogError("[UploadLinkStore] не удалось получить список ссылок", err)
	}
	defer cursor.Close(ctx)

	links := make([]*model.CustomerUploadLink, 0, limit)
	if err := cursor.All(ctx, &links); err != nil {
		return nil, util.LogError("[UploadLinkStore] не удалось прочитать список ссылок", err)
	}
	return links, nil
}

func (s *UploadLinkStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, purgeFilter(now))
	if err != nil {
		return 0, util.LogError("[UploadLinkStore] не удалось удалить истёкшие ссылки", err)
	}
	return result.DeletedCount, nil
}

func (s *UploadLinkStore) Exists(ctx context.Context, id string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, byID(id), options.Count().SetLimit(1))
	if err != nil {
		return false, util.LogError("[UploadLinkStore] ошибка проверки существования ссылки", err)
	}
	return count > 0, nil
}
