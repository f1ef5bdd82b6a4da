package main

import (
	"carshare/config"
	"carshare/di"
	"carshare/shared/logger"
)

// @title Carshare API
// @version 1.0
// @description Peer-to-peer car sharing booking service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
