package main

import (
	"context"
	"sync"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/credential"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/metrics"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

const unitOfWorkWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logger.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logging.SetLevel(logger, envConfig.LogLevel)

	ctx := context.Background()
	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(context.Background()); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	tokens, err := credential.NewTokenIssuer(envConfig.JWTKey, envConfig.JWTIssuer, envConfig.JWTAudience, envConfig.JWTTTL)
	if err != nil {
		logger.WithError(err).Fatal("credential.NewTokenIssuer")
		return
	}

	appMetrics, err := metrics.New()
	if err != nil {
		logger.WithError(err).Fatal("metrics.New")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, unitOfWorkWorkers)
	delegator.OnComplete(appMetrics.RecordUnitOfWork)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, tokens, logger)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Tokens:  tokens,
			Storage: dbStorage,
			Metrics: appMetrics,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
