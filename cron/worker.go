package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"maidly/config"
	reservationRepo "maidly/database/repository/reservation"
	"maidly/models"
	"maidly/services/notification"
	"maidly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async worker in background.
func InitConfirmationWorker(notifSvc notification.NotificationService, resRepo reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationConfirmation, handleConfirmationTask(notifSvc, resRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(notifSvc notification.NotificationService, resRepo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReservationConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[ConfirmationHandler] 📬 Confirming reservation %s for %s", p.ReservationID, p.Email)

		if err := notifSvc.SendReservationConfirmation(ctx, p); err != nil {
			log.Printf("[ConfirmationHandler] ❌ Failed to send confirmation: %v", err)
			return err
		}

		if err := resRepo.UpdateStatus(ctx, p.ReservationID, models.ReservationStatusConfirmed); err != nil {
			log.Printf("[ConfirmationHandler] ❌ Failed to mark reservation confirmed: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ConfirmationWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
