package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/common/uuid"
	"github.com/KirkDiggler/cirrosis/internal/config"
	"github.com/KirkDiggler/cirrosis/internal/handlers/discord"
	"github.com/KirkDiggler/cirrosis/internal/logger"
	consumptionRepo "github.com/KirkDiggler/cirrosis/internal/repositories/consumption"
	drinkTypeRepo "github.com/KirkDiggler/cirrosis/internal/repositories/drink_type"
	personRepo "github.com/KirkDiggler/cirrosis/internal/repositories/person"
	consumptionService "github.com/KirkDiggler/cirrosis/internal/services/consumption"
	"github.com/KirkDiggler/cirrosis/internal/services/messaging"
	statsService "github.com/KirkDiggler/cirrosis/internal/services/stats"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// repositories bundles the three stores of one backend
type repositories struct {
	persons      personRepo.Repository
	drinkTypes   drinkTypeRepo.Repository
	consumptions consumptionRepo.Repository
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		logr.Fatal("Invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}
	clk := clock.New(loc)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logr.Fatal("Failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}

	if cfg.SeedCatalog {
		added, err := drinkTypeRepo.SeedCatalog(ctx, repos.drinkTypes)
		if err != nil {
			logr.Fatal("Failed to seed drink catalog", zap.Error(err))
		}
		logr.Info("Drink catalog seeded", zap.Int("added", added))
	}

	drinks, err := repos.drinkTypes.ListDrinkTypes(ctx, &drinkTypeRepo.ListDrinkTypesInput{ActiveOnly: true})
	if err != nil {
		logr.Fatal("Failed to list drink types", zap.Error(err))
	}

	statsSvc, err := statsService.New(&statsService.Config{
		PersonRepo:               repos.persons,
		ConsumptionRepo:          repos.consumptions,
		Clock:                    clk,
		Logger:                   logr,
		StrongDayThresholdLiters: decimal.NewNullDecimal(cfg.StrongDayThresholdLiters),
		CloseMarginLiters:        decimal.NewNullDecimal(cfg.CloseMarginLiters),
	})
	if err != nil {
		logr.Fatal("Failed to create stats service", zap.Error(err))
	}

	consumptionSvc, err := consumptionService.New(&consumptionService.Config{
		PersonRepo:      repos.persons,
		DrinkTypeRepo:   repos.drinkTypes,
		ConsumptionRepo: repos.consumptions,
		Clock:           clk,
		UUIDGenerator:   uuid.New(),
		Logger:          logr,
	})
	if err != nil {
		logr.Fatal("Failed to create consumption service", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logr.Fatal("Failed to create messaging service", zap.Error(err))
	}

	bot, err := discord.New(&discord.Config{
		Token:              cfg.DiscordToken,
		ApplicationID:      cfg.ApplicationID,
		GuildID:            cfg.GuildID,
		StatsService:       statsSvc,
		ConsumptionService: consumptionSvc,
		MessagingService:   messagingSvc,
		Clock:              clk,
		Drinks:             drinks.DrinkTypes,
		Logger:             logr,
	})
	if err != nil {
		logr.Fatal("Failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logr.Fatal("Failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logr.Error("Error stopping bot", zap.Error(err))
	}

	logr.Info("Bot has been shut down")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		return openRedis(ctx, cfg)
	case config.BackendPostgres:
		return openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func openRedis(ctx context.Context, cfg *config.Config) (*repositories, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	persons, err := personRepo.NewRedis(&personRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, err
	}

	drinkTypes, err := drinkTypeRepo.NewRedis(&drinkTypeRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, err
	}

	consumptions, err := consumptionRepo.NewRedis(&consumptionRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, err
	}

	return &repositories{persons: persons, drinkTypes: drinkTypes, consumptions: consumptions}, nil
}

func openPostgres(cfg *config.Config) (*repositories, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	persons, err := personRepo.NewGorm(&personRepo.GormConfig{DB: db, AutoMigrate: true})
	if err != nil {
		return nil, err
	}

	drinkTypes, err := drinkTypeRepo.NewGorm(&drinkTypeRepo.GormConfig{DB: db, AutoMigrate: true})
	if err != nil {
		return nil, err
	}

	consumptions, err := consumptionRepo.NewGorm(&consumptionRepo.GormConfig{DB: db, AutoMigrate: true})
	if err != nil {
		return nil, err
	}

	return &repositories{persons: persons, drinkTypes: drinkTypes, consumptions: consumptions}, nil
}
