package cron

import (
	"context"
	"encoding/json"

	"docportal/config"
	"docportal/models"
	"docportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers an appointment reminder to the patient.
type Notifier interface {
	SendReminder(ctx context.Context, p models.ReminderPayload) error
}

// LogNotifier writes reminders to the log. It stands in until a mail or
// push integration is wired up.
type LogNotifier struct{}

func (LogNotifier) SendReminder(_ context.Context, p models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("bookingID", p.BookingID),
		zap.String("email", p.Email),
		zap.String("treatment", p.Treatment),
		zap.String("date", p.Date),
		zap.String("slot", p.Slot))
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(cfg config.Config, notifier Notifier) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisReminderDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifier))

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
	return srv
}

func handleReminderTask(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		if err := notifier.SendReminder(ctx, p); err != nil {
			logger.Error("failed to deliver reminder",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
