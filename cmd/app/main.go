package main

import (
	"glow/config"
	"glow/di"
	"glow/shared/logger"

	_ "glow/docs"
)

// @title Glow Booking API
// @version 1.0
// @description Appointment booking service for salon treatments.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
