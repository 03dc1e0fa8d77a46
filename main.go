package main

import (
	"fmt"
	"os"

	"stress-insights-api/src/api"
	"stress-insights-api/src/config"
	"stress-insights-api/src/dynamo"
	"stress-insights-api/src/insights"
	"stress-insights-api/src/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; refuse to start on broken configuration.
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.WithFields(logrus.Fields{
		"table":  cfg.TableName,
		"region": cfg.Region,
	}).Info("Daily insight service: cold start")

	store := dynamo.NewInsightStore(dynamo.GetClient(cfg.Region), cfg.TableName, cfg.Timeout())
	handler := api.NewHandler(store, insights.NewGenerator(nil), log)

	lambda.Start(handler.Handle)
}
