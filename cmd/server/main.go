package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/churn/api/internal/adapters/classifier"
	"github.com/churn/api/internal/adapters/handler/http"
	"github.com/churn/api/internal/adapters/repository/memory"
	"github.com/churn/api/internal/adapters/repository/postgres"
	"github.com/churn/api/internal/config"
	"github.com/churn/api/internal/core/ports"
	"github.com/churn/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("failed to load model artifact: %v", err)
	}

	var users ports.UserRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		users = postgres.NewUserRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory user store")
		users = memory.NewUserRepository()
	}

	tokens := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authService := services.NewAuthService(users, tokens)
	predictionService := services.NewPredictionService(model)

	handler := http.NewHandler(
		http.NewAuthHandler(authService),
		http.NewPredictHandler(predictionService),
		tokens,
	)
	server := &stdhttp.Server{Addr: cfg.ServerAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("churn predictor listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
