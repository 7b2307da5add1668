package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/bootstrap"
	"github.com/Domenick1991/railbooking/internal/cache"
	"github.com/Domenick1991/railbooking/internal/ident"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/notify"
	"github.com/Domenick1991/railbooking/internal/receipt"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/seed"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/Domenick1991/railbooking/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		trainRepo   repository.TrainRepository
		bookingRepo repository.BookingRepository
		userRepo    repository.UserRepository
		gen         ident.Generator
	)

	switch cfg.Drivers.Storage {
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		if err := repository.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		trainRepo = repository.NewTrainRepository(pool)
		bookingRepo = repository.NewBookingRepository(pool)
		userRepo = repository.NewUserRepository(pool)
		gen = ident.NewCloudGenerator()
	default:
		trainRepo = repository.NewMemTrainRepository()
		bookingRepo = repository.NewMemBookingRepository()
		userRepo = repository.NewMemUserRepository()
		gen = ident.NewCounterGenerator()
	}

	if err := trainRepo.Seed(ctx, seed.Trains()); err != nil {
		log.Fatalf("seed trains: %v", err)
	}

	catalogTTL := time.Duration(cfg.Booking.CatalogCacheTTL) * time.Second
	draftTTL := time.Duration(cfg.Booking.DraftTTLMinutes) * time.Minute

	var (
		drafts       booking.Drafts
		catalogCache trains.Cache
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, catalogTTL, draftTTL)
		drafts = redisCache
		catalogCache = redisCache
	} else {
		drafts = cache.NewMemoryDrafts(draftTTL)
	}

	var receipts receipt.Store
	switch cfg.Drivers.Receipts {
	case config.ReceiptsS3:
		receipts, err = receipt.NewS3Store(cfg.S3)
		if err != nil {
			log.Fatalf("init s3 receipt store: %v", err)
		}
	default:
		receipts, err = receipt.NewLocalStore(cfg.Booking.ReceiptsDir)
		if err != nil {
			log.Fatalf("init local receipt store: %v", err)
		}
	}

	var notifier booking.Notifier
	if cfg.Drivers.Notifier == config.NotifierKafka {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		notifier = notify.NewKafkaNotifier(producer, cfg.Kafka.NotificationsTopic)
	} else {
		notifier = notify.NewLogNotifier()
	}

	trainService := trains.NewTrainService(trainRepo, catalogCache)
	userService := users.NewUserService(userRepo, cfg.Auth.BootstrapAdminEmail)

	opts := []booking.BookingServiceOption{
		booking.WithSideEffectTimeout(time.Duration(cfg.Booking.SideEffectTimeoutSecs) * time.Second),
	}
	if catalogCache != nil {
		opts = append(opts, booking.WithCatalogCache(catalogCache))
	}
	bookingService := booking.NewBookingService(
		trainRepo,
		bookingRepo,
		userRepo,
		drafts,
		receipts,
		notifier,
		gen,
		opts...,
	)

	if err := bootstrap.Run(ctx, cfg, trainService, bookingService, userService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
