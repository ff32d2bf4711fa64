package main

import (
	"fmt"

	"printery/cmd"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	config := getConfig()

	root, err := cmd.NewCompositionRoot(config)
	if err != nil {
		log.Fatalf("failed to assemble the service: %v", err)
	}

	if err := root.JobManager().StartAll(); err != nil {
		log.Fatalf("failed to start background jobs: %v", err)
	}
	defer root.JobManager().StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is already populated.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}
	return config
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.Server().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
