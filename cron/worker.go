package cron

import (
	"context"
	"encoding/json"

	"studiohub/models"
	"studiohub/services/notification"
	"studiohub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartEmailWorker runs the async email worker in the background. It
// drains retry and reminder tasks and hands them to the email
// collaborator; a failed send returns the error so asynq retries with
// backoff.
func StartEmailWorker(redisOpt asynq.RedisClientOpt, emailSvc notification.EmailService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailSend, handleEmailTask(emailSvc, logger))
	mux.HandleFunc(tasks.TypeEmailReminder, handleEmailTask(emailSvc, logger))

	go func() {
		logger.Info("starting email worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("email worker stopped", zap.Error(err))
		}
	}()
	return srv
}

func handleEmailTask(emailSvc notification.EmailService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid email task payload", zap.Error(err))
			return err
		}

		if _, err := emailSvc.Send(ctx, p.Recipient, p.Subject, p.Body); err != nil {
			logger.Warn("queued email delivery failed",
				zap.String("requestId", p.RequestID), zap.Error(err))
			return err
		}
		return nil
	}
}
