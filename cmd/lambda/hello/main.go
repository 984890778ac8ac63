package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"cloud-demo-apps/internal/config"
	"cloud-demo-apps/internal/logging"
	"cloud-demo-apps/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logging.MustSetup(cfg.Log)

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(container.StaticHandler.Handle)
}
