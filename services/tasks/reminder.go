package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"careconnect/config"
	"careconnect/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// Reminders fire this long before the booking start.
const reminderLead = time.Hour

// NewReminderTask builds an asynq task carrying a reminder payload, scheduled
// for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqScheduler enqueues booking reminders onto the redis-backed queue.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler connects a scheduler to the reminder queue.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder an hour before the booking
// starts. Bookings starting sooner than that get no reminder.
func (s *AsynqScheduler) ScheduleBookingReminder(booking *models.Booking) error {
	fireAt := booking.StartDate.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Title:     "Upcoming booking",
		Body:      fmt.Sprintf("Your %s care booking starts at %s", booking.ServiceType, booking.StartDate.Format(time.RFC1123)),
		FireDate:  fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
