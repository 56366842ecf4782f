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

const customerColumns = `id, name, cpf, rg, email, phone, birth_date, marital_status, profession,
	cep, street, number, complement, neighborhood, city, state,
	monthly_income, property_value, financing_amount, down_payment, bank,
	notes, documents, source, created_by, created_at, updated_at`

type CustomerRepository struct {
	*config.Database
}

func NewCustomerRepository(database *config.Database) *CustomerRepository {
	return &CustomerRepository{database}
}

// Create : сохраняет нового клиента вместе с уже загруженными документами
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
	INSERT INTO customers (` + customerColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.CPF, c.RG, c.Email, c.Phone, c.BirthDate, c.MaritalStatus, c.Profession,
		c.CEP, c.Street, c.Number, c.Complement, c.Neighborhood, c.City, c.State,
		c.MonthlyIncome, c.PropertyValue, c.FinancingAmount, c.DownPayment, c.Bank,
		c.Notes, c.Documents, c.Source, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return util.LogError("[CustomerRepo] ошибка вставки клиента в БД", err, zap.String("customer_id", c.ID))
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var customer model.Customer
	err := sqlx.GetContext(ctx, r.DB, &customer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("клиент %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[CustomerRepo] не удалось получить клиента", err, zap.String("customer_id", id))
	}
	return &customer, nil
}

func (r *CustomerRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1)`
	if err := sqlx.GetContext(ctx, r.DB, &exists, query, cpf); err != nil {
		return false, util.LogError("[CustomerRepo] ошибка проверки CPF", err)
	}
	return exists, nil
}

// List : поиск по имени или CPF, возвращает страницу и общее количество
func (r *CustomerRepository) List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error) {
	where := `WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR cpf LIKE '%' || $1 || '%'`

	var total int
	if err := sqlx.GetContext(ctx, r.DB, &total, `SELECT COUNT(*) FROM customers `+where, search); err != nil {
		return nil, 0, util.LogError("[CustomerRepo] не удалось посчитать клиентов", err)
	}

	query := `SELECT ` + customerColumns + ` FROM customers ` + where + `
	ORDER BY created_at DESC, id ASC
	LIMIT $2 OFFSET $3`

	customers := make([]*model.Customer, 0, limit)
	if err := sqlx.SelectContext(ctx, r.DB, &customers, query, search, limit, offset(page, limit)); err != nil {
		return nil, 0, util.LogError("[CustomerRepo] не удалось получить список клиентов", err)
	}
	return customers, total, nil
}

// Update : меняет данные клиента, документы обновляются отдельными методами
func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
	UPDATE customers SET
		name = $2, cpf = $3, rg = $4, email = $5, phone = $6, birth_date = $7, marital_status = $8, profession = $9,
		cep = $10, street = $11, number = $12, complement = $13, neighborhood = $14, city = $15, state = $16,
		monthly_income = $17, property_value = $18, financing_amount = $19, down_payment = $20, bank = $21,
		notes = $22, source = $23, updated_at = $24
	WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.CPF, c.RG, c.Email, c.Phone, c.BirthDate, c.MaritalStatus, c.Profession,
		c.CEP, c.Street, c.Number, c.Complement, c.Neighborhood, c.City, c.State,
		c.MonthlyIncome, c.PropertyValue, c.FinancingAmount, c.DownPayment, c.Bank,
		c.Notes, c.Source, c.UpdatedAt,
	)
	if err != nil {
		return util.LogError("[CustomerRepo] не удалось обновить клиента", err, zap.String("customer_id", c.ID))
	}
	return expectOneRow(result, "клиент", c.ID)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[CustomerRepo] не удалось удалить клиента", err, zap.String("customer_id", id))
	}
	return expectOneRow(result, "клиент", id)
}

// AppendDocument : дописывает документ в конец JSONB-массива одним UPDATE
func (r *CustomerRepository) AppendDocument(ctx context.Context, customerID string, document model.Document) error {
	payload, err := json.Marshal([]model.Document{document})
	if err != nil {
		return util.LogError("[CustomerRepo] ошибка сериализации документа", err)
	}

	query := `UPDATE customers SET documents = documents || $2::jsonb, updated_at = now() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, customerID, string(payload))
	if err != nil {
		return util.LogError("[CustomerRepo] не удалось прикрепить документ", err,
			zap.String("customer_id", customerID), zap.String("document_id", document.ID))
	}
	return expectOneRow(result, "клиент", customerID)
}

func (r *CustomerRepository) RemoveDocument(ctx context.Context, customerID, documentID string) error {
	query := `
	UPDATE customers
	SET documents = COALESCE((
		SELECT jsonb_agg(e.d ORDER BY e.ord)
		FROM jsonb_array_elements(documents) WITH ORDINALITY AS e(d, ord)
		WHERE e.d->>'id' <> $2
	), '[]'::jsonb),
	updated_at = now()
	WHERE id = $1 AND documents @> jsonb_build_array(jsonb_build_object('id', $2::text))
	`

	result, err := r.DB.ExecContext(ctx, query, customerID, documentID)
	if err != nil {
		return util.LogError("[CustomerRepo] не удалось удалить документ", err,
			zap.String("customer_id", customerID), zap.String("document_id", documentID))
	}
	return expectOneRow(result, "документ", documentID)
}

func (r *CustomerRepository) UpdateDocumentTitle(ctx context.Context, customerID, documentID, title string) error {
	query := `
	UPDATE customers
	SET documents = (
		SELECT jsonb_agg(
			CASE WHEN e.d->>'id' = $2 THEN jsonb_set(e.d, '{customTitle}', to_jsonb($3::text)) ELSE e.d END
			ORDER BY e.ord)
		FROM jsonb_array_elements(documents) WITH ORDINALITY AS e(d, ord)
	),
	updated_at = now()
	WHERE id = $1 AND documents @> jsonb_build_array(jsonb_build_object('id', $2::text))
	`

	result, err := r.DB.ExecContext(ctx, query, customerID, documentID, title)
	if err != nil {
		return util.LogError("[CustomerRepo] не удалось переименовать документ", err,
			zap.String("customer_id", customerID), zap.String("document_id", documentID))
	}
	return expectOneRow(result, "документ", documentID)
}

// expectOneRow : ноль затронутых строк означает, что записи нет
func expectOneRow(result sql.Result, entity, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("не удалось проверить число изменённых строк", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	return nil
}
