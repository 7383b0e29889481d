package main

import (
	"context"
	"os"

	"github.com/yigit/tnp/internal/pkg/logger"
	"github.com/yigit/tnp/internal/server"
)

// @title TnP Placement API
// @version 1.0
// @description REST API for the campus Training & Placement cell
// @contact.name Placement Cell
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, "Bearer <token>"

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Setup steps log their own details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
