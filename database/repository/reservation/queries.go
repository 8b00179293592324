package reservationRepo

import (
	"context"

	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultPageSize = 50

// List returns reservations newest-first, optionally filtered by status.
func (r *mongoReservationRepo) List(ctx context.Context, filter ListFilter) ([]models.Reservation, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
