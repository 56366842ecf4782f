package mongostore

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Имена коллекций
const (
	ShareLinksCollection  = "shareableLinks"
	UploadLinksCollection = "customerUploadLinks"
	CustomersCollection   = "customers"
)

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

// usableFilter : isActive && expiresAt > now && (maxAccess не задан || accessCount < maxAccess)
func usableFilter(id string, now time.Time) bson.M {
	return bson.M{
		"_id":       id,
		"isActive":  true,
		"expiresAt": bson.M{"$gt": now},
		"$or": bson.A{
			bson.M{"maxAccess": nil},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$accessCount", "$maxAccess"}}},
		},
	}
}

func incrementAccess() bson.M {
	return bson.M{"$inc": bson.M{"accessCount": 1}}
}

func deactivate() bson.M {
	return bson.M{"$set": bson.M{"isActive": false}}
}

// purgeFilter : истёкшие или деактивированные
func purgeFilter(now time.Time) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"expiresAt": bson.M{"$lt": now}},
			bson.M{"isActive": false},
		},
	}
}

// freeSlotFilter : filesUploaded < maxFiles
func freeSlotFilter(id string) bson.M {
	return bson.M{
		"_id":   id,
		"$expr": bson.M{"$lt": bson.A{"$filesUploaded", "$maxFiles"}},
	}
}

func byCreator(userID string) bson.M {
	return bson.M{"createdBy": userID}
}

// pageOptions : новые первыми
func pageOptions(page, limit int) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}

// customerSearch : подстрока имени без учёта регистра или CPF
func customerSearch(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := regexp.QuoteMeta(search)
	return bson.M{
		"$or": bson.A{
			bson.M{"name": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"cpf": primitive.Regex{Pattern: pattern}},
		},
	}
}

func documentFilter(customerID, documentID string) bson.M {
	return bson.M{"_id": customerID, "documents.id": documentID}
}
