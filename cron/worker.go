package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"quickscan/config"
	"quickscan/models"
	"quickscan/services/notification"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in background. Delivery is
// best-effort: tasks are enqueued with MaxRetry(0), so a failed send is
// logged and dropped.
func InitEmailWorker(mailer *notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask(mailer))

	// Start async worker with retry logic
	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer *notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return err
		}

		if err := mailer.Send(ctx, p); err != nil {
			log.Printf("[EmailWorker] delivery failed for %s: %v", p.To, err)
			return err
		}

		log.Printf("[EmailWorker] sent %q to %s", p.Template, p.To)
		return nil
	}
}
