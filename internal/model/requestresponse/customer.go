package requestresponse

import "crm-web-server/internal/model"

// CustomerRequest : создание и обновление клиента
type CustomerRequest struct {
	model.PersonalData
	model.Address
	model.FinancialData
	Notes  string `json:"notes,omitempty" validate:"max=5000"`
	Source string `json:"source,omitempty" validate:"max=50"`
}

func (r CustomerRequest) ToModel(id string) *model.Customer {
	return &model.Customer{
		ID:            id,
		PersonalData:  r.PersonalData,
		Address:       r.Address,
		FinancialData: r.FinancialData,
		Notes:         r.Notes,
		Source:        r.Source,
	}
}

// CustomerListResponse : страница клиентов
type CustomerListResponse struct {
	Customers []*model.Customer `json:"customers"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

// RenameDocumentRequest : PATCH документа клиента
type RenameDocumentRequest struct {
	CustomTitle string `json:"customTitle" validate:"max=200" example:"RG frente e verso"`
}
