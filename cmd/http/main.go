package main

import (
	"context"
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/delivery/http/controllers"
	"dentalclinic-service/internal/app/delivery/http/middlewares"
	"dentalclinic-service/internal/app/delivery/http/routers"
	"dentalclinic-service/internal/app/delivery/http/views"
	"dentalclinic-service/internal/app/drivers/logger"
	"dentalclinic-service/internal/app/services/core/billings"
	"dentalclinic-service/internal/app/services/core/records"
	"dentalclinic-service/internal/app/services/core/site"
	"dentalclinic-service/internal/pkg/formatter"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := config.Validate(internalConfig, driverConfig)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while shutting down: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	displayFormatter, err := formatter.NewFormatter(bootstrap.InternalConfig.App.Locale)
	if err != nil {
		return err
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	rateLimiter := middlewares.NewRateLimiter(
		bootstrap.Logger,
		bootstrap.InternalConfig.App.MaxRequests,
		time.Second,
		time.Duration(bootstrap.InternalConfig.App.BlockTimeInSeconds)*time.Second,
	)

	// Site
	siteUsecase, err := site.NewSiteUsecase(nil)
	if err != nil {
		return err
	}
	siteController := controllers.NewSiteController(bootstrap.Logger, bootstrap.InternalConfig, siteUsecase)

	// Billings
	billingRepository := billings.NewBillingMemoryRepository()
	billingUsecase := billings.NewBillingUsecase(billingRepository, displayFormatter, bootstrap.InternalConfig)
	billingController := controllers.NewBillingController(bootstrap.Logger, bootstrap.InternalConfig, billingUsecase)

	// Records
	clinicalVisitRepository := records.NewClinicalVisitMemoryRepository()
	recordUsecase := records.NewRecordUsecase(clinicalVisitRepository)
	recordController := controllers.NewRecordController(bootstrap.Logger, bootstrap.InternalConfig, recordUsecase)

	// Pages
	pageController := controllers.NewPageController(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		renderer,
		siteUsecase,
		billingUsecase,
		recordUsecase,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		rateLimiter,
		pageController,
		billingController,
		recordController,
		siteController,
	)
	return nil
}
