package requestresponse

import (
	"encoding/json"

	"crm-web-server/internal/model"
)

// LeadRequest : публичная форма, details разбираются по source
type LeadRequest struct {
	Source  string          `json:"source" validate:"required,oneof=agro credito consultoria imobiliario geral" example:"agro"`
	Name    string          `json:"name" validate:"required,max=200" example:"José Pereira"`
	CPF     string          `json:"cpf,omitempty" validate:"max=20" example:"987.654.321-00"`
	Email   string          `json:"email,omitempty" validate:"omitempty,email" example:"jose@fazenda.com.br"`
	Phone   string          `json:"phone,omitempty" validate:"max=30" example:"+55 62 99999-0000"`
	City    string          `json:"city,omitempty" validate:"max=100" example:"Rio Verde"`
	State   string          `json:"state,omitempty" validate:"omitempty,len=2" example:"GO"`
	Details json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

func (r LeadRequest) ToModel() (*model.Lead, error) {
	source := model.LeadSource(r.Source)
	details, err := model.DecodeLeadDetails(source, r.Details)
	if err != nil {
		return nil, err
	}

	return &model.Lead{
		Source:  source,
		Name:    r.Name,
		CPF:     r.CPF,
		Email:   r.Email,
		Phone:   r.Phone,
		City:    r.City,
		State:   r.State,
		Details: details,
	}, nil
}

// UpdateLeadStatusRequest : смена статуса заявки
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted discarded" example:"contacted"`
}
