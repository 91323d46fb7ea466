package main

import (
	"fmt"

	"github.com/1997mahesh/dfcorner/configs"
	"github.com/1997mahesh/dfcorner/middlewares"
	"github.com/1997mahesh/dfcorner/pkg/logger"
	"github.com/1997mahesh/dfcorner/pkg/metrics"
	"github.com/1997mahesh/dfcorner/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// DB
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		logger.L.WithError(err).Fatal("connect database failed")
	}

	// migrate + seed
	if err := configs.Migrate(db); err != nil {
		logger.L.WithError(err).Fatal("migrate failed")
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		logger.L.WithError(err).Fatal("seed admin failed")
	}
	if err := configs.SeedCatalog(db); err != nil {
		logger.L.WithError(err).Fatal("seed catalog failed")
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logger.L.WithError(err).Fatal("server stopped")
	}
}
