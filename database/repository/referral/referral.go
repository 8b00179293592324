package referralRepo

import (
	"context"
	"errors"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no referral code matches.
var ErrNotFound = errors.New("referral code not found")

// ReferralRepository looks up referral codes.
type ReferralRepository interface {
	GetByCode(ctx context.Context, code string) (*models.ReferralCode, error)
}

type mongoReferralRepo struct {
	coll *mongo.Collection
}

// NewMongoReferralRepo returns a ReferralRepository backed by MongoDB.
func NewMongoReferralRepo() ReferralRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoReferralRepo{
		coll: db.Collection("referral_codes"),
	}
}

// GetByCode returns the referral code entry for the given code.
func (r *mongoReferralRepo) GetByCode(ctx context.Context, code string) (*models.ReferralCode, error) {
	var ref models.ReferralCode
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&ref)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ref, nil
}
