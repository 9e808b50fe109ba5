package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	_ "marketplace/docs"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/shipmentrepo"
	"marketplace/internal/adapters/out/postgres/storerepo"
	redisadapter "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	cache, err := redisadapter.NewShipmentCache(configs.RedisAddr)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer cache.Close()

	var notifier ports.OrderStatusNotifier = kafka.NewNoopOrderStatusNotifier()
	if configs.KafkaHost != "" {
		producer := kafka.NewOrderStatusProducer([]string{configs.KafkaHost}, configs.KafkaOrderStatusTopic)
		defer producer.Close()
		notifier = producer
	}

	root := cmd.NewCompositionRoot(configs, gormDB, cache, notifier, logger)

	jobManager := jobs.NewJobManager(
		root.CreateGetActiveShipmentOrdersQueryHandler(),
		root.CreateRecomputeOrderStatusCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:             goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderStatusTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		JWTSecret:             goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// TranslateError turns the unique violation on shipment items into the
	// domain's value-is-invalid error.
	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&storerepo.StoreDTO{},
		&storerepo.ProductDTO{},
		&storerepo.ProductVariantDTO{},
		&orderrepo.UserDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderTimelineDTO{},
		&shipmentrepo.SellerShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.ShipmentEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		root.CreateCreateShipmentCommandHandler(),
		root.CreateUpdateShipmentCommandHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateGetOrderShipmentsQueryHandler(),
		root.CreateGetSellerShipmentsQueryHandler(),
	)

	verifier := httpadapter.NewTokenVerifier(configs.JWTSecret)
	api := e.Group("/api/v1", httpadapter.AuthMiddleware(verifier))
	servers.RegisterHandlers(api, server)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
