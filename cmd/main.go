package main

import (
	"context"
	"log"

	"travel-service/config"
	bookinghandler "travel-service/internal/module/booking/handler"
	bookingrepo "travel-service/internal/module/booking/repositories"
	bookingusecase "travel-service/internal/module/booking/usecases"
	listinghandler "travel-service/internal/module/listing/handler"
	listingrepo "travel-service/internal/module/listing/repositories"
	listingusecase "travel-service/internal/module/listing/usecases"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/http"
	"travel-service/internal/pkg/httpclient"
	"travel-service/internal/pkg/lock"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/mailer"
	"travel-service/internal/pkg/messagestream"
	"travel-service/internal/pkg/redis"
	"travel-service/internal/pkg/scheduler"
	router "travel-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched, taskHandlers := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// confirmation email worker pool
	go sched.StartHandler(&cfg.Redis, &cfg.Scheduler,
		[]string{scheduler.TypeBookingConfirmation},
		taskHandlers,
	)

	// asynqmon dashboard
	go sched.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitorPort)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, []func(ctx context.Context, t *asynq.Task) error) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create subscriber: " + err.Error())
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create publisher: " + err.Error())
	}

	// init task queue
	sched := &scheduler.Scheduler{Log: logger}
	taskClient := sched.InitClient(&cfg.Redis)

	mail := mailer.New(&cfg.Mailer, httpClient)
	locker := lock.New(redisClient)

	listingRepo := listingrepo.New(db, logger, redisClient)
	listingUsecase := listingusecase.New(listingRepo, logger)

	bookingRepo := bookingrepo.New(db, logger)
	bookingUsecase := bookingusecase.New(bookingRepo, logger, publisher, taskClient, locker, mail, cfg.Scheduler.MaxRetry)

	validate := validator.New()

	listingHandler := &listinghandler.ListingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   listingUsecase,
	}

	bookingHandler := &bookinghandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	paymentStatusRouter, err := messagestream.NewRouter(publisher, "payment_status_poisoned", "payment_status_handler", "payment_status", subscriber, bookingHandler.ConsumePaymentStatusQueue)
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create payment_status router: " + err.Error())
	}

	messageRouters = append(messageRouters, paymentStatusRouter)

	taskHandlers := []func(ctx context.Context, t *asynq.Task) error{
		bookingHandler.SendBookingConfirmation,
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, listingHandler, bookingHandler)

	return r, messageRouters, sched, taskHandlers
}
