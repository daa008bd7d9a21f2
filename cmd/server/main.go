package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/red-social/backend/internal/events"
	"github.com/anonto42/red-social/backend/internal/metrics"
	"github.com/anonto42/red-social/backend/internal/router"
	"github.com/anonto42/red-social/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Relationship events are logged, and also go to Kafka when brokers are configured
	var publisher events.Publisher = events.LogPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(events.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			log.Fatalf("Failed to initialize Kafka publisher: %v", err)
		}
		defer kafkaPublisher.Close()
		publisher = events.Multi{publisher, kafkaPublisher}
		log.Printf("Publishing relationship events to Kafka topic %s.", cfg.KafkaTopic)
	}

	var mongoDB *mongo.Database
	if db.Mongo != nil {
		mongoDB = db.Mongo.Database(cfg.MongoDatabase)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	m := metrics.New()

	// Setup global middleware
	router.SetupMiddleware(e, m)

	// Setup routes and dependencies
	router.SetupRoutes(e, router.Dependencies{
		DB:        db.SQL,
		Mongo:     mongoDB,
		Redis:     db.Redis,
		Publisher: publisher,
		Metrics:   m,
		Config:    cfg,
	})

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server shut down.")
}
