package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"
	"shareit/internal/middleware"
	"shareit/internal/modules/booking"
	"shareit/internal/modules/item"
	"shareit/internal/modules/request"
	"shareit/internal/modules/user"
	"shareit/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat, "shareit-api")

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	itemService := item.NewService(itemRepo, commentRepo, bookingRepo, userRepo)
	itemHandler := item.NewHandler(itemService)

	bookingService := booking.NewService(bookingRepo, itemRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	requestService := request.NewService(requestRepo, itemRepo, userRepo)
	requestHandler := request.NewHandler(requestService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// user management needs no caller identity
		userHandler.RegisterRoutes(v1)

		// everything else is keyed by X-Sharer-User-Id
		protected := v1.Group("/")
		protected.Use(middleware.Identity())
		{
			itemHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)
		}
	}

	log.Info().Str("addr", cfg.Addr).Msg("starting shareit api")
	if err := r.Run(cfg.Addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
