package service

import (
	"context"
	"fmt"
	"strings"

	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

const cpfLength = 11

type CustomerService struct {
	customers ports.CustomerRepository
	storage   ports.ObjectStorage
	signer    ports.SignedURLService
	documents *documentStorer
	clock     util.Clock
	ids       util.IDGenerator
}

func NewCustomerService(
	customers ports.CustomerRepository,
	storage ports.ObjectStorage,
	signer ports.SignedURLService,
	clock util.Clock,
	ids util.IDGenerator,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		storage:   storage,
		signer:    signer,
		documents: &documentStorer{
			storage: storage,
			signer:  signer,
			clock:   clock,
			ids:     ids,
		},
		clock: clock,
		ids:   ids,
	}
}

// normalizeCustomer : маски CPF/CEP снимаются, свободный текст очищается от разметки
func normalizeCustomer(c *model.Customer) error {
	c.Name = util.SanitizeText(c.Name)
	if c.Name == "" {
		return fmt.Errorf("имя клиента обязательно: %w", model.ErrInvalidInput)
	}

	c.CPF = util.OnlyDigits(c.CPF)
	if len(c.CPF) != cpfLength {
		return fmt.Errorf("CPF должен содержать %d цифр: %w", cpfLength, model.ErrInvalidInput)
	}

	c.CEP = util.OnlyDigits(c.CEP)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Notes = util.SanitizeText(c.Notes)
	c.Profession = util.SanitizeText(c.Profession)
	c.Street = util.SanitizeText(c.Street)
	c.Complement = util.SanitizeText(c.Complement)
	c.Neighborhood = util.SanitizeText(c.Neighborhood)
	c.City = util.SanitizeText(c.City)
	return nil
}

// Create : CPF уникален среди клиентов
func (s *CustomerService) Create(ctx context.Context, auth model.AuthContext, customer *model.Customer) (*model.Customer, error) {
	if err := normalizeCustomer(customer); err != nil {
		return nil, fmt.Errorf("[CustomerService] %w", err)
	}

	exists, err := s.customers.ExistsByCPF(ctx, customer.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("[CustomerService] клиент с таким CPF уже зарегистрирован: %w", model.ErrInvalidInput)
	}

	now := s.clock.Now()
	customer.ID = s.ids.New()
	customer.CreatedBy = auth.UserUUID
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if customer.Documents == nil {
		customer.Documents = model.DocumentList{}
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	util.Logger.Info("[CustomerService] клиент создан", zap.String("customer_id", customer.ID), zap.String("created_by", auth.UserUUID))
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error) {
	page, limit = normalizePage(page, limit)
	return s.customers.List(ctx, util.SanitizeText(search), page, limit)
}

// Update : документы и авторство не меняются через этот метод
func (s *CustomerService) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	existing, err := s.customers.GetByID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	if err := normalizeCustomer(customer); err != nil {
		return nil, fmt.Errorf("[CustomerService] %w", err)
	}

	if customer.CPF != existing.CPF {
		exists, err := s.customers.ExistsByCPF(ctx, customer.CPF)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("[CustomerService] клиент с таким CPF уже зарегистрирован: %w", model.ErrInvalidInput)
		}
	}

	customer.Documents = existing.Documents
	customer.CreatedBy = existing.CreatedBy
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = s.clock.Now()

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete : объекты хранилища удаляются после записи, их ошибки только логируются
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	existing, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	for _, doc := range existing.Documents {
		s.documents.discard(ctx, doc.FilePath)
	}

	util.Logger.Info("[CustomerService] клиент удалён", zap.String("customer_id", id), zap.Int("documents", len(existing.Documents)))
	return nil
}

// UploadDocument : загрузка сотрудником из панели
func (s *CustomerService) UploadDocument(ctx context.Context, auth model.AuthContext, customerID string, file *model.UploadedFile) (*model.Document, error) {
	if file == nil || file.Size() == 0 {
		return nil, fmt.Errorf("[CustomerService] файл не передан: %w", model.ErrInvalidInput)
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	contentType := util.ResolveContentType(file.ContentType, file.Data, file.FileName)
	doc, err := s.documents.store(ctx, storagePrefix(customer.CPF, customer.ID), file, contentType)
	if err != nil {
		return nil, err
	}
	doc.UploadedVia = model.UploadedViaDashboard

	if err := s.customers.AppendDocument(ctx, customer.ID, doc); err != nil {
		s.documents.discard(ctx, doc.FilePath)
		return nil, err
	}

	util.Logger.Info("[CustomerService] документ загружен",
		zap.String("customer_id", customer.ID), zap.String("document_id", doc.ID), zap.String("user_uuid", auth.UserUUID))
	return &doc, nil
}

// DeleteDocument : сначала объект, затем запись в массиве документов
func (s *CustomerService) DeleteDocument(ctx context.Context, customerID, documentID string) error {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}

	doc, ok := customer.Documents.Find(documentID)
	if !ok {
		return fmt.Errorf("[CustomerService] документ %s: %w", documentID, model.ErrNotFound)
	}

	if err := s.storage.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("[CustomerService] не удалось удалить файл %s: %v: %w", doc.FilePath, err, model.ErrStorage)
	}

	return s.customers.RemoveDocument(ctx, customerID, documentID)
}

func (s *CustomerService) RenameDocument(ctx context.Context, customerID, documentID, title string) error {
	return s.customers.UpdateDocumentTitle(ctx, customerID, documentID, util.SanitizeText(title))
}

// DocumentURL : свежая подписанная ссылка, fileUrl в записи не используется
func (s *CustomerService) DocumentURL(ctx context.Context, customerID, documentID string) (*model.SignedURL, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	doc, ok := customer.Documents.Find(documentID)
	if !ok {
		return nil, fmt.Errorf("[CustomerService] документ %s: %w", documentID, model.ErrNotFound)
	}

	return s.signer.Issue(ctx, doc.FilePath, 0)
}
