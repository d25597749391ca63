package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"studiohub/models"

	"github.com/hibiken/asynq"
)

// Task types handled by the email worker.
const (
	TypeEmailSend     = "email:send"
	TypeEmailReminder = "email:reminder"
)

// NewEmailTask builds a queued email-send task.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailSend, b), nil
}

// NewReminderTask builds a reminder email task scheduled for fireAt.
func NewReminderTask(payload models.EmailPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeEmailReminder, b), []asynq.Option{asynq.ProcessAt(fireAt)}, nil
}

// Client wraps an asynq client behind the engine's enqueuer contract.
type Client struct {
	inner *asynq.Client
}

// NewClient builds the queue client.
func NewClient(redisOpt asynq.RedisClientOpt) *Client {
	return &Client{inner: asynq.NewClient(redisOpt)}
}

// Close releases the underlying queue connection.
func (c *Client) Close() error {
	return c.inner.Close()
}

// EnqueueEmailRetry queues a failed confirmation email for redelivery.
func (c *Client) EnqueueEmailRetry(payload models.EmailPayload) error {
	task, err := NewEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	if _, err := c.inner.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}

// ScheduleReminder queues a reminder email for delivery at fireAt.
func (c *Client) ScheduleReminder(payload models.EmailPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := c.inner.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
