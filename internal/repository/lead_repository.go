package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const leadColumns = `id, source, status, name, cpf, email, phone, city, state, details, documents, customer_id, created_at, updated_at`

type LeadRepository struct {
	*config.Database
}

func NewLeadRepository(database *config.Database) *LeadRepository {
	return &LeadRepository{database}
}

// leadRow : details лежат в JSONB и разбираются по source
type leadRow struct {
	model.Lead
	DetailsRaw []byte `db:"details"`
}

func (row *leadRow) toModel() (*model.Lead, error) {
	details, err := model.DecodeLeadDetails(row.Source, row.DetailsRaw)
	if err != nil {
		return nil, err
	}
	lead := row.Lead
	lead.Details = details
	return &lead, nil
}

// Create : сохраняет заявку с публичной формы
func (r *LeadRepository) Create(ctx context.Context, exec sqlx.ExtContext, lead *model.Lead) error {
	details, err := lead.DetailsJSON()
	if err != nil {
		return err
	}

	query := `
	INSERT INTO leads (` + leadColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = exec.ExecContext(ctx, query,
		lead.ID, lead.Source, lead.Status, lead.Name, lead.CPF, lead.Email, lead.Phone, lead.City, lead.State,
		string(details), lead.Documents, lead.CustomerID, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return util.LogError("[LeadRepo] ошибка вставки заявки в БД", err, zap.String("lead_id", lead.ID))
	}
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var row leadRow
	err := sqlx.GetContext(ctx, exec, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("заявка %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[LeadRepo] не удалось получить заявку", err, zap.String("lead_id", id))
	}
	return row.toModel()
}

// List : фильтр по источнику и статусу, новые первыми
func (r *LeadRepository) List(ctx context.Context, exec sqlx.ExtContext, filter model.LeadFilter, page, limit int) ([]*model.Lead, error) {
	query := `
	SELECT ` + leadColumns + `
	FROM leads
	WHERE ($1 = '' OR source = $1) AND ($2 = '' OR status = $2)
	ORDER BY created_at DESC, id ASC
	LIMIT $3 OFFSET $4
	`

	var rows []leadRow
	err := sqlx.SelectContext(ctx, exec, &rows, query, string(filter.Source), string(filter.Status), limit, offset(page, limit))
	if err != nil {
		return nil, util.LogError("[LeadRepo] не удалось получить список заявок", err)
	}

	leads := make([]*model.Lead, 0, len(rows))
	for i := range rows {
		lead, err := rows[i].toModel()
		if err != nil {
			return nil, util.LogError("[LeadRepo] повреждённые details заявки", err, zap.String("lead_id", rows[i].ID))
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id string, status model.LeadStatus) error {
	query := `UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return util.LogError("[LeadRepo] не удалось обновить статус заявки", err, zap.String("lead_id", id))
	}
	return expectOneRow(result, "заявка", id)
}

// MarkConverted : статус converted и ссылка на созданного клиента
func (r *LeadRepository) MarkConverted(ctx context.Context, exec sqlx.ExtContext, id, customerID string) error {
	query := `UPDATE leads SET status = $2, customer_id = $3, updated_at = now() WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id, string(model.LeadStatusConverted), customerID)
	if err != nil {
		return util.LogError("[LeadRepo] не удалось отметить заявку конвертированной", err, zap.String("lead_id", id))
	}
	return expectOneRow(result, "заявка", id)
}

func (r *LeadRepository) AppendDocument(ctx context.Context, exec sqlx.ExtContext, id string, document model.Document) error {
	payload, err := json.Marshal([]model.Document{document})
	if err != nil {
		return util.LogError("[LeadRepo] ошибка сериализации документа", err)
	}

	query := `UPDATE leads SET documents = documents || $2::jsonb, updated_at = now() WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id, string(payload))
	if err != nil {
		return util.LogError("[LeadRepo] не удалось прикрепить документ", err, zap.String("lead_id", id))
	}
	return expectOneRow(result, "заявка", id)
}

func (r *LeadRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[LeadRepo] не удалось удалить заявку", err, zap.String("lead_id", id))
	}
	return expectOneRow(result, "заявка", id)
}
