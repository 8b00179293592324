package reservationRepo

import (
	"context"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the data access contract for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res models.Reservation) (string, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	List(ctx context.Context, filter ListFilter) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error
	DeleteByID(ctx context.Context, id string) error
}

// ListFilter narrows and pages the admin reservation listing.
type ListFilter struct {
	Status   models.ReservationStatus // empty = all statuses
	Page     int                      // 1-based
	PageSize int
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository backed by MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
