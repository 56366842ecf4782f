package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CustomerStore : клиенты в коллекции customers, документы встроенным массивом
type CustomerStore struct {
	collection *mongo.Collection
}

func NewCustomerStore(db *mongo.Database) *CustomerStore {
	return &CustomerStore{collection: db.Collection(CustomersCollection)}
}

func (s *CustomerStore) Create(ctx context.Context, customer *model.Customer) error {
	if customer.Documents == nil {
		customer.Documents = model.DocumentList{}
	}
	if _, err := s.collection.InsertOne(ctx, customer); err != nil {
		return util.LogError("[CustomerStore] ошибка вставки клиента", err, zap.String("customer_id", customer.ID))
	}
	return nil
}

func (s *CustomerStore) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := s.collection.FindOne(ctx, byID(id)).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("клиент %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogError("[CustomerStore] не удалось получить клиента", err, zap.String("customer_id", id))
	}
	return &customer, nil
}

func (s *CustomerStore) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"cpf": cpf}, options.Count().SetLimit(1))
	if err != nil {
		return false, util.LogError("[CustomerStore] ошибка проверки CPF", err)
	}
	return count > 0, nil
}

func (s *CustomerStore) List(ctx context.Context, search string, page, limit int) ([]*model.Customer, int, error) {
	filter := customerSearch(search)

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, util.LogError("[CustomerStore] не удалось посчитать клиентов", err)
	}

	cursor, err := s.collection.Find(ctx, filter, pageOptions(page, limit))
	if err != nil {
		return nil, 0, util.LogError("[CustomerStore] не удалось получить список клиентов", err)
	}
	defer cursor.Close(ctx)

	customers := make([]*model.Customer, 0, limit)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, 0, util.LogError("[CustomerStore] не удалось прочитать список клиентов", err)
	}
	return customers, int(total), nil
}

func (s *CustomerStore) Update(ctx context.Context, customer *model.Customer) error {
	result, err := s.collection.UpdateOne(ctx, byID(customer.ID), bson.M{"$set": customerFields(customer)})
	if err != nil {
		return util.LogError("[CustomerStore] не удалось обновить клиента", err, zap.String("customer_id", customer.ID))
	}
	return expectMatched(result, "клиент", customer.ID)
}

func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return util.LogError("[CustomerStore] не удалось удалить клиента", err, zap.String("customer_id", id))
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("клиент %s: %w", id, model.ErrNotFound)
	}
	return nil
}

func (s *CustomerStore) AppendDocument(ctx context.Context, customerID string, document model.Document) error {
	update := bson.M{
		"$push": bson.M{"documents": document},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := s.collection.UpdateOne(ctx, byID(customerID), update)
	if err != nil {
		return util.LogError("[CustomerStore] не удалось прикрепить документ", err,
			zap.String("customer_id", customerID), zap.String("document_id", document.ID))
	}
	return expectMatched(result, "клиент", customerID)
}

func (s *CustomerStore) RemoveDocument(ctx context.Context, customerID, documentID string) error {
	update := bson.M{
		"$pull": bson.M{"documents": bson.M{"id": documentID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := s.collection.UpdateOne(ctx, documentFilter(customerID, documentID), update)
	if err != nil {
		return util.LogError("[CustomerStore] не удалось удалить документ", err,
			zap.String("customer_id", customerID), zap.String("document_id", documentID))
	}
	return expectMatched(result, "документ", documentID)
}

func (s *CustomerStore) UpdateDocumentTitle(ctx context.Context, customerID, documentID, title string) error {
	update := bson.M{
		"$set": bson.M{"documents.$.customTitle": title, "updatedAt": time.Now().UTC()},
	}
	result, err := s.collection.UpdateOne(ctx, documentFilter(customerID, documentID), update)
	if err != nil {
		return util.LogError("[CustomerStore] не удалось переименовать документ", err,
			zap.String("customer_id", customerID), zap.String("document_id", documentID))
	}
	return expectMatched(result, "документ", documentID)
}

// customerFields : всё, кроме документов и полей создания
func customerFields(c *model.Customer) bson.M {
	return bson.M{
		"name":            c.Name,
		"cpf":             c.CPF,
		"rg":              c.RG,
		"email":           c.Email,
		"phone":           c.Phone,
		"birthDate":       c.BirthDate,
		"maritalStatus":   c.MaritalStatus,
		"profession":      c.Profession,
		"cep":             c.CEP,
		"street":          c.Street,
		"number":          c.Number,
		"complement":      c.Complement,
		"neighborhood":    c.Neighborhood,
		"city":            c.City,
		"state":           c.State,
		"monthlyIncome":   c.MonthlyIncome,
		"propertyValue":   c.PropertyValue,
		"financingAmount": c.FinancingAmount,
		"downPayment":     c.DownPayment,
		"bank":            c.Bank,
		"notes":           c.Notes,
		"source":          c.Source,
		"updatedAt":       c.UpdatedAt,
	}
}

func expectMatched(result *mongo.UpdateResult, entity, id string) error {
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	return nil
}
