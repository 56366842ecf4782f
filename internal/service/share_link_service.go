package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

// ShareLinkService : ссылки на просмотр данных клиента
type ShareLinkService struct {
	links             ports.ShareLinkRepository
	customers         ports.CustomerRepository
	signer            ports.SignedURLService
	clock             util.Clock
	maxExpiresInHours int
}

func NewShareLinkService(
	links ports.ShareLinkRepository,
	customers ports.CustomerRepository,
	signer ports.SignedURLService,
	clock util.Clock,
	maxExpiresInHours int,
) *ShareLinkService {
	return &ShareLinkService{
		links:             links,
		customers:         customers,
		signer:            signer,
		clock:             clock,
		maxExpiresInHours: maxExpiresInHours,
	}
}

// Create : документы ссылки должны принадлежать клиенту, дубликаты отбрасываются
func (s *ShareLinkService) Create(ctx context.Context, auth model.AuthContext, spec model.ShareLinkSpec) (*model.ShareableLink, error) {
	if spec.CustomerID == "" {
		return nil, fmt.Errorf("[ShareLinkService] не указан клиент: %w", model.ErrInvalidInput)
	}
	if err := validateGrantLifetime(spec.ExpiresInHours, s.maxExpiresInHours, spec.MaxAccess); err != nil {
		return nil, fmt.Errorf("[ShareLinkService] %w", err)
	}

	customer, err := s.customers.GetByID(ctx, spec.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("[ShareLinkService] клиент %s: %w", spec.CustomerID, err)
	}

	documents := make(model.LinkDocumentList, 0, len(spec.DocumentIDs))
	for _, documentID := range spec.DocumentIDs {
		if documents.Contains(documentID) {
			continue
		}
		doc, ok := customer.Documents.Find(documentID)
		if !ok {
			return nil, fmt.Errorf("[ShareLinkService] документ %s не принадлежит клиенту %s: %w", documentID, customer.ID, model.ErrInvalidInput)
		}
		documents = append(documents, model.LinkDocument{
			ID:           doc.ID,
			FileName:     doc.FileName,
			DocumentType: doc.DocumentType,
		})
	}

	id, err := util.GenerateUniqueToken(ctx, util.LinkTokenLength, s.links.Exists)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	link := &model.ShareableLink{
		Grant: model.Grant{
			ID:         id,
			CustomerID: customer.ID,
			CreatedBy:  auth.UserUUID,
			CreatedAt:  now,
			ExpiresAt:  now.Add(time.Duration(spec.ExpiresInHours) * time.Hour),
			MaxAccess:  spec.MaxAccess,
			IsActive:   true,
		},
		Permissions: spec.Permissions,
		Documents:   documents,
	}

	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}

	util.Logger.Info("[ShareLinkService] ссылка создана",
		zap.String("link_id", link.ID), zap.String("customer_id", link.CustomerID), zap.String("created_by", link.CreatedBy))
	return link, nil
}

// Resolve : проверка и инкремент accessCount выполняются одной операцией хранилища
func (s *ShareLinkService) Resolve(ctx context.Context, linkID string) (*model.ResolvedShareLink, error) {
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

	return &model.ResolvedShareLink{Link: link, TimeRemaining: link.TimeRemaining(now)}, nil
}

// View : resolve и проекция данных клиента по разрешениям ссылки
func (s *ShareLinkService) View(ctx context.Context, linkID string) (*model.SharedView, error) {
	resolved, err := s.Resolve(ctx, linkID)
	if err != nil {
		return nil, err
	}
	link := resolved.Link

	customer, err := s.customers.GetByID(ctx, link.CustomerID)
	if err != nil {
		return nil, err
	}

	projection := model.ProjectCustomer(customer, link)
	if projection.ProjectedDocuments != nil && len(projection.Documents) > 0 {
		signed, err := s.signer.IssueForDocuments(ctx, projection.Documents, link.ExpiresAt)
		if err != nil {
			// обращение уже засчитано, документы отдаются без ссылок
			util.Logger.Warn("[ShareLinkService] не удалось подписать документы ссылки",
				zap.String("link_id", link.ID), zap.Error(err))
		} else {
			projection.Documents = signed
		}
	}

	return &model.SharedView{
		Link:          model.NewPublicShareLink(link),
		Customer:      projection,
		TimeRemaining: int64(resolved.TimeRemaining / time.Second),
	}, nil
}

// DownloadAll : расходует обращение так же, как просмотр. Права проверяются до
// инкремента, чтобы запрещённый запрос не тратил лимит
func (s *ShareLinkService) DownloadAll(ctx context.Context, linkID string) (*model.DownloadBundle, error) {
	current, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if !current.Permissions.ViewDocuments {
		return nil, fmt.Errorf("ссылка %s не открывает документы: %w", current.ID, model.ErrForbidden)
	}

	resolved, err := s.Resolve(ctx, linkID)
	if err != nil {
		return nil, err
	}
	link := resolved.Link

	customer, err := s.customers.GetByID(ctx, link.CustomerID)
	if err != nil {
		return nil, err
	}

	documents := model.SharedDocuments(customer, link)
	if skipped := len(link.Documents) - len(documents); skipped > 0 {
		util.Logger.Info("[ShareLinkService] часть документов ссылки удалена у клиента",
			zap.String("link_id", link.ID), zap.Int("skipped", skipped))
	}

	if len(documents) > 0 {
		documents, err = s.signer.IssueForDocuments(ctx, documents, link.ExpiresAt)
		if err != nil {
			return nil, err
		}
	}

	bundle := &model.DownloadBundle{Documents: documents}
	if link.Permissions.ViewPersonalData {
		bundle.CustomerName = customer.Name
	}
	return bundle, nil
}

// Deactivate : только создатель ссылки, повторный вызов не ошибка
func (s *ShareLinkService) Deactivate(ctx context.Context, auth model.AuthContext, linkID string) error {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link.CreatedBy != auth.UserUUID {
		return fmt.Errorf("[ShareLinkService] ссылка %s создана другим пользователем: %w", linkID, model.ErrForbidden)
	}
	if !link.IsActive {
		return nil
	}

	if err := s.links.Deactivate(ctx, linkID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}

	util.Logger.Info("[ShareLinkService] ссылка деактивирована", zap.String("link_id", linkID), zap.String("user_uuid", auth.UserUUID))
	return nil
}

func (s *ShareLinkService) ListForUser(ctx context.Context, auth model.AuthContext, page, limit int) ([]*model.ShareableLink, error) {
	page, limit = normalizePage(page, limit)
	return s.links.ListByCreator(ctx, auth.UserUUID, page, limit)
}

// PurgeExpired : удаляет истёкшие и деактивированные ссылки
func (s *ShareLinkService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.links.PurgeExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	util.Logger.Info("[ShareLinkService] очистка ссылок", zap.Int64("deleted", deleted))
	return deleted, nil
}
