package questionstore

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	dbmodels "survey-form/models/db"
)

type Provider interface {
	Insert(ctx context.Context, rec dbmodels.Question) (id string, err error)
}

func NewInstance(collection *mongo.Collection) Provider {
	return &impl{
		collection: collection,
	}
}

type impl struct {
	collection *mongo.Collection
}

func (i impl) Insert(ctx context.Context, rec dbmodels.Question) (id string, err error) {
	// _id генерирует драйвер
	rec.ID = ""
	res, err := i.collection.InsertOne(ctx, rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления вопроса")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}
