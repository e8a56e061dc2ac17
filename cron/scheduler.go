package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"docportal/config"
	"docportal/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// AsynqReminderScheduler queues appointment reminders via asynq. It
// satisfies booking.ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler builds the asynq client for the reminder queue.
func NewReminderScheduler(cfg config.Config) *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderDB,
	})
	return &AsynqReminderScheduler{
		client: client,
		lead:   time.Duration(cfg.ReminderLeadTime) * time.Hour,
	}
}

// Schedule enqueues a reminder to fire ahead of the appointment date. For
// bookings closer than the lead time, the reminder fires immediately.
func (s *AsynqReminderScheduler) Schedule(b models.Booking) error {
	appointmentDay, err := time.ParseInLocation("2006-01-02", b.Date, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable booking date %q: %w", b.Date, err)
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.ID,
		Email:     b.Email,
		Treatment: b.Treatment,
		Date:      b.Date,
		Slot:      b.Slot,
	})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}

	fireAt := appointmentDay.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
