package tasks

import (
	"encoding/json"
	"time"

	"maidly/models"

	"github.com/hibiken/asynq"
)

const TypeReservationConfirmation = "reservation:confirmation"

func NewReservationConfirmationTask(payload models.ReservationConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}
