package model

import "time"

// SharedDocument : документ в том виде, в каком его видит получатель ссылки
type SharedDocument struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	FilePath     string    `json:"-"`
	FileType     string    `json:"fileType,omitempty"`
	DocumentType string    `json:"documentType,omitempty"`
	CustomTitle  string    `json:"customTitle,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
	SignedURL    string    `json:"signedUrl,omitempty"`
	ExpiresIn    int       `json:"expiresIn,omitempty"` // секунды
}

type ProjectedNotes struct {
	Notes string `json:"notes"`
}

type ProjectedDocuments struct {
	Documents []SharedDocument `json:"documents"`
}

// CustomerProjection : группы данных встроены указателями,
// nil-группа полностью отсутствует в JSON
type CustomerProjection struct {
	ID string `json:"id"`
	*PersonalData
	*Address
	*FinancialData
	*ProjectedNotes
	*ProjectedDocuments
}

// ProjectCustomer : оставляет только разрешённые группы. Документы фильтруются
// по списку, выбранному при создании ссылки, порядок берётся из ссылки
func ProjectCustomer(customer *Customer, link *ShareableLink) *CustomerProjection {
	projection := &CustomerProjection{ID: customer.ID}
	perms := link.Permissions

	if perms.ViewPersonalData {
		personal := customer.PersonalData
		projection.PersonalData = &personal
	}
	if perms.ViewAddress {
		address := customer.Address
		projection.Address = &address
	}
	if perms.ViewFinancialData {
		financial := customer.FinancialData
		projection.FinancialData = &financial
	}
	if perms.ViewNotes {
		projection.ProjectedNotes = &ProjectedNotes{Notes: customer.Notes}
	}
	if perms.ViewDocuments {
		projection.ProjectedDocuments = &ProjectedDocuments{Documents: SharedDocuments(customer, link)}
	}

	return projection
}

// SharedDocuments : документы ссылки, которые ещё существуют у клиента.
// Удалённые документы пропускаются
func SharedDocuments(customer *Customer, link *ShareableLink) []SharedDocument {
	shared := make([]SharedDocument, 0, len(link.Documents))
	for _, ref := range link.Documents {
		doc, ok := customer.Documents.Find(ref.ID)
		if !ok {
			continue
		}
		documentType := doc.DocumentType
		if documentType == "" {
			documentType = ref.DocumentType
		}
		shared = append(shared, SharedDocument{
			ID:           doc.ID,
			FileName:     doc.FileName,
			FilePath:     doc.FilePath,
			FileType:     doc.FileType,
			DocumentType: documentType,
			CustomTitle:  doc.CustomTitle,
			UploadedAt:   doc.UploadedAt,
		})
	}
	return shared
}
