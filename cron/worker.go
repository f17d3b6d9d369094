// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"appointly/config"
	appointmentRepo "appointly/database/repository/appointment"
	"appointly/models"
	"appointly/services/email"
	"appointly/services/tasks"
	"appointly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository, mailer email.EmailService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(apptRepo, mailer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers a reminder email, re-checking the appointment
// first: a booking cancelled or rescheduled since enqueueing is skipped.
func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository, mailer email.EmailService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return err
		}
		if appt == nil || appt.Cancelled || !appt.Date.Equal(p.Date) {
			logger.Debug("Skipping stale reminder", zap.String("appointmentId", p.AppointmentID))
			return nil
		}

		if err := mailer.SendAppointmentReminder(ctx, p); err != nil {
			logger.Warn("Reminder email failed",
				zap.String("appointmentId", p.AppointmentID),
				zap.String("email", p.Email),
				zap.Error(err))
			return err
		}
		return nil
	}
}
