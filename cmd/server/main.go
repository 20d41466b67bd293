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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkovalev/graphql_crm/internal/config"
	"github.com/mkovalev/graphql_crm/internal/crm"
	"github.com/mkovalev/graphql_crm/internal/es"
	"github.com/mkovalev/graphql_crm/internal/graph"
	"github.com/mkovalev/graphql_crm/internal/logging"
	loggingmw "github.com/mkovalev/graphql_crm/internal/middleware/logging"
	"github.com/mkovalev/graphql_crm/internal/mykafka"
	"github.com/mkovalev/graphql_crm/internal/service/search"
	httpserver "github.com/mkovalev/graphql_crm/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	svc := &crm.Service{DB: db, Log: logger}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		brokers := []string{configuration.KAFKA_ADDRESS}
		topics := []string{"customer_events", "product_events", "order_events"}
		producer, err = mykafka.NewProducer(brokers, topics)
		if err != nil {
			log.Fatalf("kafka init error: %v", err)
		}
		svc.Events = producer
	} else {
		logger.Warn("KAFKA_ADDRESS not set, event publishing disabled")
	}

	var searcher *search.Client
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searcher = search.NewClient(esClient, "product")
		svc.Index = searcher
	} else {
		logger.Warn("ES_URL not set, product search disabled")
	}

	schema, err := graph.NewSchema(svc, searcher)
	if err != nil {
		log.Fatalf("schema error: %v", err)
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{Schema: schema})

	srv := &http.Server{
		Addr:         ":" + configuration.HTTP_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
