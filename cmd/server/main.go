package main

// @title           Reading List API
// @version         1.0
// @description     API for tracking the books you want to read, are reading and have read.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3001
// @BasePath  /api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/readinglist/internal/config"
	"github.com/snnyvrz/readinglist/internal/db"
	docs "github.com/snnyvrz/readinglist/internal/docs"
	"github.com/snnyvrz/readinglist/internal/handler"
	"github.com/snnyvrz/readinglist/internal/middleware"
	"github.com/snnyvrz/readinglist/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal(err)
	}

	e := setupRouter(cfg, database, startTime)

	log.Printf("server running on port %s", cfg.Port)
	if err := e.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}

func setupRouter(cfg *config.Config, database *gorm.DB, startTime time.Time) *gin.Engine {
	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	docs.SwaggerInfo.BasePath = "/api"

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		bookHandler := handler.NewBookHandler(repository.NewGormBookRepository(database))
		bookHandler.RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
