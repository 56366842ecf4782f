package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LeadSource : форма, через которую пришла заявка
type LeadSource string

const (
	LeadSourceAgro        LeadSource = "agro"
	LeadSourceCredito     LeadSource = "credito"
	LeadSourceConsultoria LeadSource = "consultoria"
	LeadSourceImobiliario LeadSource = "imobiliario"
	LeadSourceGeral       LeadSource = "geral"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusDiscarded LeadStatus = "discarded"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusDiscarded:
		return true
	}
	return false
}

func (s LeadSource) Valid() bool {
	switch s {
	case LeadSourceAgro, LeadSourceCredito, LeadSourceConsultoria, LeadSourceImobiliario, LeadSourceGeral:
		return true
	}
	return false
}

// LeadDetails : поля, специфичные для источника заявки.
// Реализации: *AgroDetails, *CreditoDetails, *ConsultoriaDetails, *ImobiliarioDetails, *GeralDetails
type LeadDetails interface {
	Source() LeadSource
}

type AgroDetails struct {
	PropertySize *float64 `json:"propertySize,omitempty"` // гектары
	Crop         string   `json:"crop,omitempty"`
	HerdSize     *int     `json:"herdSize,omitempty"`
	CreditLine   string   `json:"creditLine,omitempty"`
}

type CreditoDetails struct {
	CreditType      string   `json:"creditType,omitempty"`
	RequestedAmount *float64 `json:"requestedAmount,omitempty"`
	MonthlyIncome   *float64 `json:"monthlyIncome,omitempty"`
	HasCollateral   *bool    `json:"hasCollateral,omitempty"`
}

type ConsultoriaDetails struct {
	CompanyName string `json:"companyName,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
	Segment     string `json:"segment,omitempty"`
	Employees   *int   `json:"employees,omitempty"`
}

type ImobiliarioDetails struct {
	PropertyType  string   `json:"propertyType,omitempty"`
	PropertyValue *float64 `json:"propertyValue,omitempty"`
	DownPayment   *float64 `json:"downPayment,omitempty"`
	FinancingTerm *int     `json:"financingTerm,omitempty"` // месяцы
}

type GeralDetails struct {
	Message string `json:"message,omitempty"`
}

func (*AgroDetails) Source() LeadSource        { return LeadSourceAgro }
func (*CreditoDetails) Source() LeadSource     { return LeadSourceCredito }
func (*ConsultoriaDetails) Source() LeadSource { return LeadSourceConsultoria }
func (*ImobiliarioDetails) Source() LeadSource { return LeadSourceImobiliario }
func (*GeralDetails) Source() LeadSource       { return LeadSourceGeral }

// DecodeLeadDetails : разбирает details строго по схеме источника, лишние поля считаются ошибкой
func DecodeLeadDetails(source LeadSource, raw []byte) (LeadDetails, error) {
	var details LeadDetails
	switch source {
	case LeadSourceAgro:
		details = &AgroDetails{}
	case LeadSourceCredito:
		details = &CreditoDetails{}
	case LeadSourceConsultoria:
		details = &ConsultoriaDetails{}
	case LeadSourceImobiliario:
		details = &ImobiliarioDetails{}
	case LeadSourceGeral:
		details = &GeralDetails{}
	default:
		return nil, fmt.Errorf("неизвестный источник заявки %q: %w", source, ErrInvalidInput)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return details, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(details); err != nil {
		return nil, fmt.Errorf("details не соответствуют источнику %s: %v: %w", source, err, ErrInvalidInput)
	}

	return details, nil
}

// Lead : предварительная регистрация с публичной формы
type Lead struct {
	ID        string       `db:"id" json:"id"`
	Source    LeadSource   `db:"source" json:"source"`
	Status    LeadStatus   `db:"status" json:"status"`
	Name      string       `db:"name" json:"name"`
	CPF       string       `db:"cpf" json:"cpf,omitempty"`
	Email     string       `db:"email" json:"email,omitempty"`
	Phone     string       `db:"phone" json:"phone,omitempty"`
	City      string       `db:"city" json:"city,omitempty"`
	State     string       `db:"state" json:"state,omitempty"`
	Details   LeadDetails  `db:"-" json:"details"`
	Documents DocumentList `db:"documents" json:"documents"`
	// CustomerID : заполняется после конвертации в клиента
	CustomerID *string   `db:"customer_id" json:"customerId,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type leadJSON Lead

func (l *Lead) UnmarshalJSON(data []byte) error {
	aux := struct {
		*leadJSON
		Details json.RawMessage `json:"details"`
	}{leadJSON: (*leadJSON)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	details, err := DecodeLeadDetails(l.Source, aux.Details)
	if err != nil {
		return err
	}
	l.Details = details
	return nil
}

// DetailsJSON : для записи в колонку JSONB
func (l *Lead) DetailsJSON() ([]byte, error) {
	if l.Details == nil {
		return []byte("{}"), nil
	}
	if l.Details.Source() != l.Source {
		return nil, fmt.Errorf("details %s не соответствуют источнику %s: %w", l.Details.Source(), l.Source, ErrInvalidInput)
	}
	return json.Marshal(l.Details)
}

// LeadFilter : фильтр списка заявок, пустое поле не ограничивает
type LeadFilter struct {
	Source LeadSource
	Status LeadStatus
}
