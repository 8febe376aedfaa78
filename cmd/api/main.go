package main

import (
	_ "granite_estimator/docs"
	"granite_estimator/internal/adapter/http/routes"
	"granite_estimator/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Granite Estimator API
// @version         1.0
// @description     Countertop estimates, deposits and shop assistant.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.Load())
}
