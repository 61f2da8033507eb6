package cron

import (
	"context"
	"log"
	"time"

	"castlechat/config"
	"castlechat/services/pubdata"

	"github.com/hibiken/asynq"
)

const TypeMenuRefresh = "menu:refresh"

// InitRefreshWorker runs the background worker that re-warms the beer
// menu cache so chat requests rarely pay the fetch latency. Tasks are
// enqueued on a fixed interval by the scheduler started alongside it.
func InitRefreshWorker(beer *pubdata.BeerFetcher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMenuRefresh, handleRefreshTask(beer))

	go func() {
		log.Println("[RefreshWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go startScheduler(redisOpts)
}

func handleRefreshTask(beer *pubdata.BeerFetcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := beer.Refresh(ctx); err != nil {
			log.Printf("[RefreshHandler] beer menu refresh failed: %v", err)
			return err
		}
		log.Println("[RefreshHandler] beer menu cache refreshed")
		return nil
	}
}

func startScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.RefreshIntervalMinutes
	if interval <= 0 {
		interval = 5
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	every := "@every " + (time.Duration(interval) * time.Minute).String()
	if _, err := scheduler.Register(every, asynq.NewTask(TypeMenuRefresh, nil)); err != nil {
		log.Printf("[RefreshWorker] failed to register refresh schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[RefreshWorker] scheduler stopped: %v", err)
	}
}
