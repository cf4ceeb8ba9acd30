package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/parlorchat/go-parlor/internal/api"
	"github.com/parlorchat/go-parlor/internal/config"
	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/stats"
)

func main() {
	logger := log.New(os.Stderr, "[parlor] ", log.LstdFlags)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatal("load .env:", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("config:", err)
	}

	dsn := database.ConnectionParams{
		Database: cfg.Database.Name,
		Username: cfg.Database.User,
		Password: cfg.Database.Password,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		UseSSL:   cfg.Database.UseSSL,
	}.DSN()

	dbConn, err := database.NewPgParlorRepository(dsn, logger)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Fatal("db close:", err)
		}
	}()

	// outside production the schema is recreated and reseeded on boot
	if err := dbConn.Sync(!cfg.Production); err != nil {
		logger.Fatal("schema sync:", err)
	}

	if !cfg.Production {
		if err := dbConn.SeedSecurityQuestions(); err != nil {
			logger.Fatal("seed security questions:", err)
		}
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	srv := api.NewParlorApp(mux, logger, dbConn, statsUpdater, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutdown complete")
}
