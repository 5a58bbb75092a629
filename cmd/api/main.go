package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/student-portal-api/internal/handler"
	"github.com/campusworks/student-portal-api/internal/repository"
	"github.com/campusworks/student-portal-api/pkg/config"
	"github.com/campusworks/student-portal-api/pkg/database"
	"github.com/campusworks/student-portal-api/pkg/logger"
	"github.com/campusworks/student-portal-api/pkg/storage"
)

func main() {
	initDB := flag.Bool("init-db", false, "drop and recreate the schema with demo seed data, then continue serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	if *initDB || cfg.InitSchema {
		logr.Sugar().Warnw("reinitializing schema, all existing data will be dropped")
		if err := repository.InitSchema(context.Background(), db); err != nil {
			logr.Sugar().Fatalw("failed to init schema", "error", err)
		}
		logr.Sugar().Infow("schema initialized with demo seed data")
	}

	blobs, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	r := handler.NewRouter(cfg, logr, db, blobs)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
