package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"kitchen/cmd"
	"kitchen/internal/adapters/out/postgres/cartrepo"
	"kitchen/internal/adapters/out/postgres/foodrepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&foodrepo.FoodDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := app.NewHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
