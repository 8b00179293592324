package reservation

import (
	"context"

	reservationRepo "maidly/database/repository/reservation"
	"maidly/models"
	"maidly/services/referral"

	"github.com/hibiken/asynq"
)

// ReservationService turns confirmed configurator sessions into persisted
// reservations and serves the admin back-office over them.
type ReservationService interface {
	CreateFromSession(ctx context.Context, session *models.ConfiguratorSession, req models.ReservationRequest) (*models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	List(ctx context.Context, filter reservationRepo.ListFilter) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error
}

// ConfirmationEnqueuer hands the confirmation task to the queue.
// *asynq.Client satisfies it.
type ConfirmationEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo        reservationRepo.ReservationRepository
	Referral    referral.ReferralService
	Enqueuer    ConfirmationEnqueuer
	CatalogData *models.Catalog
	Currency    string
}
