package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"dog-adoption-api/internal/adapters/storage/postgres"
	"dog-adoption-api/internal/config"
	"dog-adoption-api/internal/platform/logger"
	"dog-adoption-api/internal/router"
)

// @title Dog Adoption API
// @version 1.0
// @description API de demostración para un centro de adopción canina: perros, catálogo de razas, solicitudes de adopción, historial de salud y entrenamientos.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			logg.Error("postgres unavailable", map[string]any{"error": err.Error()})
			log.Fatalf("postgres error: %v", err)
		}
		defer db.Close()
		logg.Info("storage: postgres", nil)
	} else {
		logg.Info("storage: in-memory with demo dataset", nil)
	}

	r := router.NewRouter(router.Options{Log: logg, DB: db})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logg.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
