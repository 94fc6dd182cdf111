package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"shipping/cmd"
	"shipping/internal/adapters/out/postgres/accountrepo"
	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/paymentrepo"
	"shipping/internal/adapters/out/postgres/tariffrepo"
	"shipping/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() { _ = app.Close() }()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		BasePriceCents:         goDotEnvInt64("BASE_PRICE_CENTS"),
		WeightCoefficient:      goDotEnvVariable("WEIGHT_COEFFICIENT"),
		CollectorCardID:        goDotEnvInt64("COLLECTOR_CARD_ID"),
		CollectorCardExpMonth:  goDotEnvInt64("COLLECTOR_CARD_EXP_MONTH"),
		CollectorCardExpYear:   goDotEnvInt64("COLLECTOR_CARD_EXP_YEAR"),
		CollectorCardCode:      goDotEnvInt64("COLLECTOR_CARD_CODE"),
		OrderRetentionHours:    goDotEnvInt64("ORDER_RETENTION_HOURS"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		TariffCacheTTLSeconds:  300,
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

func goDotEnvInt64(key string) int64 {
	value, err := strconv.ParseInt(goDotEnvVariable(key), 10, 64)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver errors like duplicate keys to gorm sentinels
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&accountrepo.AccountDTO{},
		&accountrepo.AccountOwnerDTO{},
		&paymentrepo.PaymentDTO{},
		&userrepo.UserDTO{},
		&tariffrepo.DestinationDTO{},
		&tariffrepo.OrderTypeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
