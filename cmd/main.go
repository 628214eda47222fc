package main

import (
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"wheelspin/internal/config"
	"wheelspin/internal/handlers"
	"wheelspin/internal/services"
	"wheelspin/internal/store"
)

func main() {
	// 1. Load configuration from the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize logging
	defer logger.Init("wheelspin", true, false, io.Discard).Close()

	// 3. Initialize the store and make sure the data file exists
	st := store.New(cfg.DataFile)
	if err := st.EnsureExists(); err != nil {
		logger.Fatalf("Failed to initialize data file: %v", err)
	}

	// 4. Initialize the wheel service and HTTP handler
	wheelService := services.NewWheelService(st)
	httpHandler := handlers.NewHTTPHandler(wheelService)

	// 5. Set up the Gin router and register routes
	r := gin.Default()
	httpHandler.RegisterRoutes(r)

	// 6. Run the server
	logger.Infof("Server starting on %s (data file %s)", cfg.Addr, cfg.DataFile)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
