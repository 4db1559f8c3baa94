package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"shareit/internal/config"
	"shareit/internal/gateway"
	"shareit/internal/logging"
	"shareit/internal/middleware"
)

func main() {
	cfg := config.LoadGateway()
	log := logging.New(cfg.LogLevel, cfg.LogFormat, "shareit-gateway")

	proxy := gateway.NewProxy(cfg.ServerURL, log)
	handler := gateway.NewHandler(proxy)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.CORS())

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.Identity())

	handler.RegisterRoutes(v1, protected)

	log.Info().Str("addr", cfg.Addr).Str("upstream", cfg.ServerURL).Msg("starting shareit gateway")
	if err := r.Run(cfg.Addr); err != nil {
		log.Error().Err(err).Msg("gateway stopped")
		os.Exit(1)
	}
}
