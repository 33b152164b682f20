package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"careconnect/config"
	bookingRepo "careconnect/database/repository/booking"
	"careconnect/models"
	"careconnect/services/tasks"
	"careconnect/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookings))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		// The booking may have been cancelled since the reminder was
		// enqueued; skip silently in that case.
		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			logger.Error("Failed to fetch booking for reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		if booking == nil || booking.Terminal() {
			logger.Info("Skipping reminder for missing or terminal booking", zap.String("bookingID", p.BookingID))
			return nil
		}

		logger.Info("Booking reminder due",
			zap.String("bookingID", p.BookingID),
			zap.String("userID", p.UserID),
			zap.String("title", p.Title),
			zap.String("body", p.Body),
		)
		return nil
	}
}
