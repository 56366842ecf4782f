package service

import (
	"context"
	"fmt"
	"strings"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

// LeadService : заявки с публичных форм и их конвертация в клиентов
type LeadService struct {
	db        *config.Database
	leads     ports.LeadRepository
	customers ports.CustomerService
	documents *documentStorer
	clock     util.Clock
	ids       util.IDGenerator
}

func NewLeadService(
	db *config.Database,
	leads ports.LeadRepository,
	customers ports.CustomerService,
	storage ports.ObjectStorage,
	signer ports.SignedURLService,
	clock util.Clock,
	ids util.IDGenerator,
) *LeadService {
	return &LeadService{
		db:        db,
		leads:     leads,
		customers: customers,
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

func (s *LeadService) Submit(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	if !lead.Source.Valid() {
		return nil, fmt.Errorf("[LeadService] неизвестный источник %q: %w", lead.Source, model.ErrInvalidInput)
	}

	lead.Name = util.SanitizeText(lead.Name)
	if lead.Name == "" {
		return nil, fmt.Errorf("[LeadService] имя обязательно: %w", model.ErrInvalidInput)
	}
	if lead.Details != nil && lead.Details.Source() != lead.Source {
		return nil, fmt.Errorf("[LeadService] details не соответствуют источнику %s: %w", lead.Source, model.ErrInvalidInput)
	}
	if lead.Details == nil {
		details, err := model.DecodeLeadDetails(lead.Source, nil)
		if err != nil {
			return nil, err
		}
		lead.Details = details
	}

	now := s.clock.Now()
	lead.ID = s.ids.New()
	lead.Status = model.LeadStatusNew
	lead.CPF = util.OnlyDigits(lead.CPF)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	lead.City = util.SanitizeText(lead.City)
	lead.State = strings.ToUpper(strings.TrimSpace(lead.State))
	lead.Documents = model.DocumentList{}
	lead.CustomerID = nil
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if err := s.leads.Create(ctx, s.db, lead); err != nil {
		return nil, err
	}

	util.Logger.Info("[LeadService] новая заявка", zap.String("lead_id", lead.ID), zap.String("source", string(lead.Source)))
	return lead, nil
}

func (s *LeadService) Get(ctx context.Context, id string) (*model.Lead, error) {
	return s.leads.GetByID(ctx, s.db, id)
}

func (s *LeadService) List(ctx context.Context, filter model.LeadFilter, page, limit int) ([]*model.Lead, error) {
	if filter.Source != "" && !filter.Source.Valid() {
		return nil, fmt.Errorf("[LeadService] неизвестный источник %q: %w", filter.Source, model.ErrInvalidInput)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("[LeadService] неизвестный статус %q: %w", filter.Status, model.ErrInvalidInput)
	}

	page, limit = normalizePage(page, limit)
	return s.leads.List(ctx, s.db, filter, page, limit)
}

// UpdateStatus : статус converted выставляется только через Convert
func (s *LeadService) UpdateStatus(ctx context.Context, id string, status model.LeadStatus) error {
	if !status.Valid() || status == model.LeadStatusConverted {
		return fmt.Errorf("[LeadService] недопустимый статус %q: %w", status, model.ErrInvalidInput)
	}
	return s.leads.UpdateStatus(ctx, s.db, id, status)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	lead, err := s.leads.GetByID(ctx, s.db, id)
	if err != nil {
		return err
	}

	if err := s.leads.Delete(ctx, s.db, id); err != nil {
		return err
	}

	// после конвертации документы принадлежат клиенту
	if lead.CustomerID == nil {
		for _, doc := range lead.Documents {
			s.documents.discard(ctx, doc.FilePath)
		}
	}
	return nil
}

// UploadDocument : документ с публичной формы, хранится под префиксом заявки
func (s *LeadService) UploadDocument(ctx context.Context, id string, file *model.UploadedFile) (*model.Document, error) {
	if file == nil || file.Size() == 0 {
		return nil, fmt.Errorf("[LeadService] файл не передан: %w", model.ErrInvalidInput)
	}

	lead, err := s.leads.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if lead.Status == model.LeadStatusConverted {
		return nil, fmt.Errorf("[LeadService] заявка %s уже конвертирована: %w", id, model.ErrInvalidInput)
	}

	contentType := util.ResolveContentType(file.ContentType, file.Data, file.FileName)
	doc, err := s.documents.store(ctx, "leads/"+lead.ID, file, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.leads.AppendDocument(ctx, s.db, lead.ID, doc); err != nil {
		s.documents.discard(ctx, doc.FilePath)
		return nil, err
	}
	return &doc, nil
}

// Convert : создаёт клиента из заявки, документы заявки переходят клиенту
func (s *LeadService) Convert(ctx context.Context, auth model.AuthContext, id string) (*model.Customer, error) {
	lead, err := s.leads.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if lead.Status == model.LeadStatusConverted {
		return nil, fmt.Errorf("[LeadService] заявка %s уже конвертирована: %w", id, model.ErrInvalidInput)
	}

	customer := customerFromLead(lead)
	created, err := s.customers.Create(ctx, auth, customer)
	if err != nil {
		return nil, err
	}

	if err := s.leads.MarkConverted(ctx, s.db, lead.ID, created.ID); err != nil {
		return nil, err
	}

	util.Logger.Info("[LeadService] заявка конвертирована",
		zap.String("lead_id", lead.ID), zap.String("customer_id", created.ID), zap.String("user_uuid", auth.UserUUID))
	return created, nil
}

func customerFromLead(lead *model.Lead) *model.Customer {
	customer := &model.Customer{
		PersonalData: model.PersonalData{
			Name:  lead.Name,
			CPF:   lead.CPF,
			Email: lead.Email,
			Phone: lead.Phone,
		},
		Address: model.Address{
			City:  lead.City,
			State: lead.State,
		},
		Source:    string(lead.Source),
		Documents: append(model.DocumentList{}, lead.Documents...),
	}

	switch details := lead.Details.(type) {
	case *model.CreditoDetails:
		if details.MonthlyIncome != nil {
			customer.MonthlyIncome = *details.MonthlyIncome
		}
		if details.RequestedAmount != nil {
			customer.FinancingAmount = *details.RequestedAmount
		}
	case *model.ImobiliarioDetails:
		if details.PropertyValue != nil {
			customer.PropertyValue = *details.PropertyValue
		}
		if details.DownPayment != nil {
			customer.DownPayment = *details.DownPayment
		}
	case *model.ConsultoriaDetails:
		customer.Notes = strings.TrimSpace(strings.Join([]string{details.CompanyName, details.Segment}, " "))
	case *model.GeralDetails:
		customer.Notes = details.Message
	}

	return customer
}
