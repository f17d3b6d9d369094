// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"appointly/config"
	"appointly/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues delayed appointment-reminder tasks on the
// redis-backed queue. The worker in cron/ consumes them.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler connects an asynq client using the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// Schedule enqueues a reminder to fire at the given time. Reminders already
// in the past are dropped silently.
func (r *ReminderScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	if fireAt.Before(time.Now()) {
		return nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := r.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (r *ReminderScheduler) Close() error {
	return r.client.Close()
}
