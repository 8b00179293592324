package inquiryRepo

import (
	"context"
	"time"

	"maidly/database"
	"maidly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InquiryRepository is the data access contract for contact inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inq models.Inquiry) (string, error)
	List(ctx context.Context, limit int) ([]models.Inquiry, error)
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo returns an InquiryRepository backed by MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoInquiryRepo{
		coll: db.Collection("inquiries"),
	}
}

// Create inserts a new inquiry and returns its ID.
func (r *mongoInquiryRepo) Create(ctx context.Context, inq models.Inquiry) (string, error) {
	if inq.ID == "" {
		inq.ID = uuid.New().String()
	}
	inq.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, inq)
	if err != nil {
		return "", err
	}
	return inq.ID, nil
}

// List returns the most recent inquiries, newest first.
func (r *mongoInquiryRepo) List(ctx context.Context, limit int) ([]models.Inquiry, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
