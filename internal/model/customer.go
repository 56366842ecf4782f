package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Способы загрузки документа
const (
	UploadedViaDashboard          = "dashboard"
	UploadedViaCustomerUploadLink = "customer_upload_link"
)

// Document : метаданные файла, сами байты лежат в объектном хранилище по FilePath
type Document struct {
	ID           string    `json:"id" bson:"id"`
	FileName     string    `json:"fileName" bson:"fileName"`
	FilePath     string    `json:"filePath" bson:"filePath"`
	FileURL      string    `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"` // последний выданный URL, только кэш
	FileType     string    `json:"fileType" bson:"fileType"`
	FileSize     int64     `json:"fileSize" bson:"fileSize"`
	DocumentType string    `json:"documentType,omitempty" bson:"documentType,omitempty"`
	CustomTitle  string    `json:"customTitle,omitempty" bson:"customTitle,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt" bson:"uploadedAt"`
	UploadedVia  string    `json:"uploadedVia,omitempty" bson:"uploadedVia,omitempty"`
	UploadLinkID string    `json:"uploadLinkId,omitempty" bson:"uploadLinkId,omitempty"`
}

// DocumentList хранится в колонке JSONB
type DocumentList []Document

func (l DocumentList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *DocumentList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func (l DocumentList) Find(documentID string) (Document, bool) {
	for _, d := range l {
		if d.ID == documentID {
			return d, true
		}
	}
	return Document{}, false
}

type PersonalData struct {
	Name          string `db:"name" json:"name" bson:"name"`
	CPF           string `db:"cpf" json:"cpf" bson:"cpf"`
	RG            string `db:"rg" json:"rg,omitempty" bson:"rg,omitempty"`
	Email         string `db:"email" json:"email,omitempty" bson:"email,omitempty"`
	Phone         string `db:"phone" json:"phone,omitempty" bson:"phone,omitempty"`
	BirthDate     string `db:"birth_date" json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	MaritalStatus string `db:"marital_status" json:"maritalStatus,omitempty" bson:"maritalStatus,omitempty"`
	Profession    string `db:"profession" json:"profession,omitempty" bson:"profession,omitempty"`
}

type Address struct {
	CEP          string `db:"cep" json:"cep,omitempty" bson:"cep,omitempty"`
	Street       string `db:"street" json:"street,omitempty" bson:"street,omitempty"`
	Number       string `db:"number" json:"number,omitempty" bson:"number,omitempty"`
	Complement   string `db:"complement" json:"complement,omitempty" bson:"complement,omitempty"`
	Neighborhood string `db:"neighborhood" json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
	City         string `db:"city" json:"city,omitempty" bson:"city,omitempty"`
	State        string `db:"state" json:"state,omitempty" bson:"state,omitempty"`
}

type FinancialData struct {
	MonthlyIncome   float64 `db:"monthly_income" json:"monthlyIncome" bson:"monthlyIncome"`
	PropertyValue   float64 `db:"property_value" json:"propertyValue" bson:"propertyValue"`
	FinancingAmount float64 `db:"financing_amount" json:"financingAmount" bson:"financingAmount"`
	DownPayment     float64 `db:"down_payment" json:"downPayment" bson:"downPayment"`
	Bank            string  `db:"bank" json:"bank,omitempty" bson:"bank,omitempty"`
}

type Customer struct {
	ID            string `db:"id" json:"id" bson:"_id"`
	PersonalData  `bson:",inline"`
	Address       `bson:",inline"`
	FinancialData `bson:",inline"`
	Notes         string       `db:"notes" json:"notes,omitempty" bson:"notes,omitempty"`
	Documents     DocumentList `db:"documents" json:"documents" bson:"documents"`
	Source        string       `db:"source" json:"source,omitempty" bson:"source,omitempty"`
	CreatedBy     string       `db:"created_by" json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time    `db:"created_at" json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updatedAt" bson:"updatedAt"`
}

// scanJSON : общий Scan для JSONB-колонок
func scanJSON(src interface{}, target interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, target)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), target)
	default:
		return fmt.Errorf("неподдерживаемый тип JSONB: %T", src)
	}
}
