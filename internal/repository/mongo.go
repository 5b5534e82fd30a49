package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/inquiries/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const inquiriesCollection = "inquiries"

type mongoInquiryRepository struct {
	collection *mongo.Collection
}

// NewMongoInquiryRepository builds repository on top of inquiries collection of database
func NewMongoInquiryRepository(client *mongo.Client, database string) InquiryRepository {
	return &mongoInquiryRepository{collection: client.Database(database).Collection(inquiriesCollection)}
}

func (r *mongoInquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	if _, err := r.collection.InsertOne(ctx, i); err != nil {
		return err
	}
	return nil
}

func (r *mongoInquiryRepository) FindAll(ctx context.Context) ([]*model.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	inquiries := make([]*model.Inquiry, 0)
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}

	for _, i := range inquiries {
		i.CreatedAt = i.CreatedAt.UTC()
	}
	return inquiries, nil
}

func (r *mongoInquiryRepository) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	var i model.Inquiry
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	i.CreatedAt = i.CreatedAt.UTC()
	return &i, nil
}
