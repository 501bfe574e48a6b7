package scheduler

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"travel-service/config"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	TypeBookingConfirmation = "email:booking_confirmation"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

// StartMonitoring serves the asynqmon dashboard. Exhausted tasks stay visible
// there in the archived set, which is the dead-letter path for failed sends.
func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port int) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	http.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	s.Log.Ctx(ctx).Error(fmt.Sprintf("error start monitoring scheduler: %v", err))
}

// StartHandler runs the worker pool. Retry delay grows exponentially from the
// configured base; asynq archives tasks once MaxRetry is exhausted.
func (s *Scheduler) StartHandler(redisCfg *config.RedisConfig, schedCfg *config.SchedulerConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(redisCfg),
		asynq.Config{
			Concurrency: schedCfg.Concurrency,
			Queues: map[string]int{
				"default": 10,
			},
			RetryDelayFunc: func(n int, e error, t *asynq.Task) time.Duration {
				base := time.Duration(schedCfg.RetryBaseSec) * time.Second
				return base * time.Duration(math.Pow(2, float64(n)))
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Ctx(ctx).Error(fmt.Sprintf("error start handler scheduler: %v", err))
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
