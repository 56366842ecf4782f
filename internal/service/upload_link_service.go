package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

// UploadLinkService : ссылки, по которым клиент сам загружает документы
type UploadLinkService struct {
	links             ports.UploadLinkRepository
	customers         ports.CustomerRepository
	documents         *documentStorer
	clock             util.Clock
	maxExpiresInHours int
}

func NewUploadLinkService(
	links ports.UploadLinkRepository,
	customers ports.CustomerRepository,
	storage ports.ObjectStorage,
	signer ports.SignedURLService,
	clock util.Clock,
	ids util.IDGenerator,
	maxExpiresInHours int,
) *UploadLinkService {
	return &UploadLinkService{
		links:     links,
		customers: customers,
		documents: &documentStorer{
			storage: storage,
			signer:  signer,
			clock:   clock,
			ids:     ids,
		},
		clock:             clock,
		maxExpiresInHours: maxExpiresInHours,
	}
}

func (s *UploadLinkService) Create(ctx context.Context, auth model.AuthContext, spec model.UploadLinkSpec) (*model.CustomerUploadLink, error) {
	if spec.CustomerID == "" {
		return nil, fmt.Errorf("[UploadLinkService] не указан клиент: %w", model.ErrInvalidInput)
	}
	if err := validateGrantLifetime(spec.ExpiresInHours, s.maxExpiresInHours, spec.MaxAccess); err != nil {
		return nil, fmt.Errorf("[UploadLinkService] %w", err)
	}
	if spec.MaxFileSize <= 0 {
		return nil, fmt.Errorf("[UploadLinkService] maxFileSize должен быть положительным: %w", model.ErrInvalidInput)
	}
	if spec.MaxFiles < 1 {
		return nil, fmt.Errorf("[UploadLinkService] maxFiles должно быть не меньше 1: %w", model.ErrInvalidInput)
	}

	allowed := normalizeMimeTypes(spec.AllowedDocumentTypes)
	if len(allowed) == 0 {
		return nil, fmt.Errorf("[UploadLinkService] не указаны разрешённые типы файлов: %w", model.ErrInvalidInput)
	}

	customer, err := s.customers.GetByID(ctx, spec.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("[UploadLinkService] клиент %s: %w", spec.CustomerID, err)
	}

	id, err := util.GenerateUniqueToken(ctx, util.LinkTokenLength, s.links.Exists)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	link := &model.CustomerUploadLink{
		Grant: model.Grant{
			ID:         id,
			CustomerID: customer.ID,
			CreatedBy:  auth.UserUUID,
			CreatedAt:  now,
			ExpiresAt:  now.Add(time.Duration(spec.ExpiresInHours) * time.Hour),
			MaxAccess:  spec.MaxAccess,
			IsActive:   true,
		},
		CustomerName:         customer.Name,
		CustomerCPF:          customer.CPF,
		AllowedDocumentTypes: allowed,
		MaxFileSize:          spec.MaxFileSize,
		MaxFiles:             spec.MaxFiles,
	}

	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}

	util.Logger.Info("[UploadLinkService] ссылка на загрузку создана",
		zap.String("link_id", link.ID), zap.String("customer_id", link.CustomerID), zap.Strings("allowed", allowed))
	return link, nil
}

// Resolve : открытие страницы загрузки засчитывается как обращение
func (s *UploadLinkService) Resolve(ctx context.Context, linkID string) (*model.ResolvedUploadLink, error) {
	now := s.clock.Now()

	link, consumed, err := s.links.ConsumeAccess(ctx, linkID, now)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("ссылка %s: %w", linkID, model.ErrNotFound)
	}
	if !consumed {
		return nil, classifyUnconsumed(&link.Grant, now)
	}

	return &model.ResolvedUploadLink{Link: link, TimeRemaining: link.TimeRemaining(now)}, nil
}

// Upload : проверки ссылки, типа и размера выполняются до записи в хранилище.
// Слот файла резервируется атомарно, при любой ошибке после резерва он возвращается
// CheckUploadable : дешёвая проверка ссылки до чтения тела запроса
func (s *UploadLinkService) CheckUploadable(ctx context.Context, linkID string) error {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	return link.CheckUploadable(s.clock.Now())
}

func (s *UploadLinkService) Upload(ctx context.Context, linkID string, file *model.UploadedFile) (*model.UploadResult, error) {
	if file == nil || file.Size() == 0 {
		return nil, fmt.Errorf("файл не передан: %w", model.ErrInvalidInput)
	}

	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if err := link.CheckUploadable(s.clock.Now()); err != nil {
		return nil, err
	}

	contentType := util.ResolveContentType(file.ContentType, file.Data, file.FileName)
	if !link.AllowsType(contentType) {
		return nil, fmt.Errorf("тип %s не разрешён ссылкой %s: %w", contentType, link.ID, model.ErrUnsupportedType)
	}
	if file.Size() > link.MaxFileSize {
		return nil, fmt.Errorf("файл %d байт, лимит %d: %w", file.Size(), link.MaxFileSize, model.ErrTooLarge)
	}

	reserved, err := s.links.ReserveFileSlot(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, fmt.Errorf("ссылка %s: загружено %d из %d файлов: %w", link.ID, link.MaxFiles, link.MaxFiles, model.ErrQuotaExceeded)
	}

	doc, err := s.documents.store(ctx, storagePrefix(link.CustomerCPF, link.CustomerID), file, contentType)
	if err != nil {
		s.releaseSlot(ctx, link.ID)
		return nil, err
	}
	doc.UploadedVia = model.UploadedViaCustomerUploadLink
	doc.UploadLinkID = link.ID

	if err := s.customers.AppendDocument(ctx, link.CustomerID, doc); err != nil {
		s.documents.discard(ctx, doc.FilePath)
		s.releaseSlot(ctx, link.ID)
		return nil, err
	}

	util.Logger.Info("[UploadLinkService] клиент загрузил документ",
		zap.String("link_id", link.ID), zap.String("customer_id", link.CustomerID),
		zap.String("document_id", doc.ID), zap.Int64("size", doc.FileSize))

	return &model.UploadResult{DocumentID: doc.ID, FileName: doc.FileName, FileSize: doc.FileSize}, nil
}

func (s *UploadLinkService) releaseSlot(ctx context.Context, linkID string) {
	if err := s.links.ReleaseFileSlot(context.WithoutCancel(ctx), linkID); err != nil {
		util.Logger.Error("[UploadLinkService] не удалось вернуть слот файла", zap.String("link_id", linkID), zap.Error(err))
	}
}

func (s *UploadLinkService) Deactivate(ctx context.Context, auth model.AuthContext, linkID string) error {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link.CreatedBy != auth.UserUUID {
		return fmt.Errorf("[UploadLinkService] ссылка %s создана другим пользователем: %w", linkID, model.ErrForbidden)
	}
	if !link.IsActive {
		return nil
	}

	if err := s.links.Deactivate(ctx, linkID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	return nil
}

func (s *UploadLinkService) ListForUser(ctx context.Context, auth model.AuthContext, page, limit int) ([]*model.CustomerUploadLink, error) {
	page, limit = normalizePage(page, limit)
	return s.links.ListByCreator(ctx, auth.UserUUID, page, limit)
}

func (s *UploadLinkService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.links.PurgeExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	util.Logger.Info("[UploadLinkService] очистка ссылок на загрузку", zap.Int64("deleted", deleted))
	return deleted, nil
}

// normalizeMimeTypes : нижний регистр, без параметров и дубликатов
func normalizeMimeTypes(types []string) []string {
	normalized := make([]string, 0, len(types))
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	return normalized
}
