package reservationRepo

import (
	"context"
	"errors"
	"time"

	"maidly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reservation not found")

// Create inserts a new reservation and returns its ID.
func (r *mongoReservationRepo) Create(ctx context.Context, res models.Reservation) (string, error) {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now()
	res.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, res)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

// GetByID returns a reservation by its ID.
func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// UpdateStatus moves a reservation to the given lifecycle status.
func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a reservation permanently.
func (r *mongoReservationRepo) DeleteByID(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
