package main

import (
	"context"
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/delivery/cli"
	"dentalclinic-service/internal/app/drivers/logger"
	"dentalclinic-service/internal/app/services/core/billings"
	"dentalclinic-service/internal/app/services/core/records"
	"dentalclinic-service/internal/pkg/formatter"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	err := config.Validate(internalConfig, driverConfig)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	displayFormatter, err := formatter.NewFormatter(internalConfig.App.Locale)
	if err != nil {
		log.Fatalf("Error loading locale: %v", err)
	}

	billingUsecase := billings.NewBillingUsecase(billings.NewBillingMemoryRepository(), displayFormatter, internalConfig)
	recordUsecase := records.NewRecordUsecase(records.NewClinicalVisitMemoryRepository())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(log, billingUsecase, recordUsecase)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
