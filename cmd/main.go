package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gigcampus/order-service/internal/app"
	"github.com/gigcampus/order-service/internal/config"
	"github.com/gigcampus/order-service/internal/events"
	"github.com/gigcampus/order-service/internal/filestore"
	"github.com/gigcampus/order-service/internal/handler"
	"github.com/gigcampus/order-service/internal/postgres"
	"github.com/gigcampus/order-service/internal/repo"
	"github.com/gigcampus/order-service/internal/service"
	"github.com/gigcampus/order-service/pkg/cache"
	"github.com/gigcampus/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Marketplace Order Service API
// @version         1.0
// @description     Order lifecycle API for the student freelance marketplace
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	files, err := filestore.NewDiskStore(conf.Uploads.Dir, conf.Uploads.BaseURL)
	panicIfErr("failed to init uploads dir", err)

	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, lru, publisher)
	milestoneService := service.NewMilestoneService(logger, txManager, orderRepo, orderRepo, lru)
	deliveryService := service.NewDeliveryService(logger, txManager, orderRepo, files, lru, orderService)
	analyticsService := service.NewAnalyticsService(logger, orderRepo, lru)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, milestoneService, deliveryService, analyticsService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetClosers(publisher)
	app.ServeUploads(files.Dir())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	lru.StartJanitor(ctx)
	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
