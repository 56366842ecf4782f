package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Grant : общая часть ссылки на просмотр и ссылки на загрузку
type Grant struct {
	ID          string    `db:"id" json:"id" bson:"_id"`
	CustomerID  string    `db:"customer_id" json:"customerId" bson:"customerId"`
	CreatedBy   string    `db:"created_by" json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt" bson:"createdAt"`
	ExpiresAt   time.Time `db:"expires_at" json:"expiresAt" bson:"expiresAt"`
	AccessCount int       `db:"access_count" json:"accessCount" bson:"accessCount"`
	MaxAccess   *int      `db:"max_access" json:"maxAccess,omitempty" bson:"maxAccess,omitempty"`
	IsActive    bool      `db:"is_active" json:"isActive" bson:"isActive"`
}

// CheckOpen : активна и не истекла
func (g *Grant) CheckOpen(now time.Time) error {
	if !g.IsActive {
		return fmt.Errorf("ссылка %s деактивирована: %w", g.ID, ErrExpired)
	}
	if !now.Before(g.ExpiresAt) {
		return fmt.Errorf("ссылка %s истекла %s: %w", g.ID, g.ExpiresAt.Format(time.RFC3339), ErrExpired)
	}
	return nil
}

// CheckUsable : isActive && now < expiresAt && (maxAccess не задан || accessCount < maxAccess)
func (g *Grant) CheckUsable(now time.Time) error {
	if err := g.CheckOpen(now); err != nil {
		return err
	}
	if g.MaxAccess != nil && g.AccessCount >= *g.MaxAccess {
		return fmt.Errorf("ссылка %s: %d из %d обращений: %w", g.ID, g.AccessCount, *g.MaxAccess, ErrQuotaExceeded)
	}
	return nil
}

func (g *Grant) TimeRemaining(now time.Time) time.Duration {
	if remaining := g.ExpiresAt.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// SharePermissions : каждый флаг открывает свою группу данных клиента
type SharePermissions struct {
	ViewPersonalData  bool `json:"viewPersonalData" bson:"viewPersonalData"`
	ViewAddress       bool `json:"viewAddress" bson:"viewAddress"`
	ViewFinancialData bool `json:"viewFinancialData" bson:"viewFinancialData"`
	ViewDocuments     bool `json:"viewDocuments" bson:"viewDocuments"`
	ViewNotes         bool `json:"viewNotes" bson:"viewNotes"`
}

func (p SharePermissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *SharePermissions) Scan(src interface{}) error {
	return scanJSON(src, p)
}

// LinkDocument : документ, явно выбранный при создании ссылки
type LinkDocument struct {
	ID           string `json:"id" bson:"id"`
	FileName     string `json:"fileName" bson:"fileName"`
	DocumentType string `json:"documentType,omitempty" bson:"documentType,omitempty"`
}

type LinkDocumentList []LinkDocument

func (l LinkDocumentList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *LinkDocumentList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func (l LinkDocumentList) Contains(documentID string) bool {
	for _, d := range l {
		if d.ID == documentID {
			return true
		}
	}
	return false
}

type ShareableLink struct {
	Grant       `bson:",inline"`
	Permissions SharePermissions `db:"permissions" json:"permissions" bson:"permissions"`
	Documents   LinkDocumentList `db:"documents" json:"documents" bson:"documents"`
}

type CustomerUploadLink struct {
	Grant                `bson:",inline"`
	CustomerName         string         `db:"customer_name" json:"customerName" bson:"customerName"`
	CustomerCPF          string         `db:"customer_cpf" json:"customerCpf" bson:"customerCpf"`
	AllowedDocumentTypes pq.StringArray `db:"allowed_document_types" json:"allowedDocumentTypes" bson:"allowedDocumentTypes"`
	MaxFileSize          int64          `db:"max_file_size" json:"maxFileSize" bson:"maxFileSize"`
	MaxFiles             int            `db:"max_files" json:"maxFiles" bson:"maxFiles"`
	FilesUploaded        int            `db:"files_uploaded" json:"filesUploaded" bson:"filesUploaded"`
}

func (l *CustomerUploadLink) AllowsType(mimeType string) bool {
	for _, t := range l.AllowedDocumentTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// CheckUploadable : загрузки расходуют бюджет просмотра страницы, с которой они сделаны,
// поэтому достаточно accessCount <= maxAccess
func (l *CustomerUploadLink) CheckUploadable(now time.Time) error {
	if err := l.CheckOpen(now); err != nil {
		return err
	}
	if l.MaxAccess != nil && l.AccessCount > *l.MaxAccess {
		return fmt.Errorf("ссылка %s: %w", l.ID, ErrQuotaExceeded)
	}
	return nil
}

// ResolvedShareLink : грант после инкремента и оставшееся время
type ResolvedShareLink struct {
	Link          *ShareableLink
	TimeRemaining time.Duration
}

type ResolvedUploadLink struct {
	Link          *CustomerUploadLink
	TimeRemaining time.Duration
}

// ShareLinkSpec : параметры новой ссылки на просмотр
type ShareLinkSpec struct {
	CustomerID     string
	ExpiresInHours int
	MaxAccess      *int
	Permissions    SharePermissions
	DocumentIDs    []string
}

// UploadLinkSpec : параметры новой ссылки на загрузку
type UploadLinkSpec struct {
	CustomerID           string
	ExpiresInHours       int
	MaxAccess            *int
	AllowedDocumentTypes []string
	MaxFileSize          int64
	MaxFiles             int
}

// UploadedFile : файл из multipart-запроса
type UploadedFile struct {
	FileName     string
	ContentType  string
	DocumentType string
	Data         []byte
}

func (f *UploadedFile) Size() int64 {
	return int64(len(f.Data))
}

type UploadResult struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
}

// SignedURL : временная ссылка на один объект хранилища
type SignedURL struct {
	URL       string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
	ExpiresIn int       `json:"expiresIn"` // секунды
}

// PublicShareLink : то, что анонимный получатель знает о ссылке.
// Список документов есть только при viewDocuments
type PublicShareLink struct {
	ID          string           `json:"id"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	AccessCount int              `json:"accessCount"`
	MaxAccess   *int             `json:"maxAccess,omitempty"`
	Permissions SharePermissions `json:"permissions"`
	Documents   LinkDocumentList `json:"documents,omitempty"`
}

func NewPublicShareLink(link *ShareableLink) *PublicShareLink {
	public := &PublicShareLink{
		ID:          link.ID,
		ExpiresAt:   link.ExpiresAt,
		AccessCount: link.AccessCount,
		MaxAccess:   link.MaxAccess,
		Permissions: link.Permissions,
	}
	if link.Permissions.ViewDocuments {
		public.Documents = link.Documents
	}
	return public
}

// SharedView : ответ публичного просмотра ссылки
type SharedView struct {
	Link          *PublicShareLink    `json:"link"`
	Customer      *CustomerProjection `json:"customer"`
	TimeRemaining int64               `json:"timeRemaining"` // секунды
}

// DownloadBundle : все документы ссылки с подписанными URL
type DownloadBundle struct {
	CustomerName string           `json:"customerName"`
	Documents    []SharedDocument `json:"documents"`
}
