package routers

import (
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/delivery/http/controllers"
	"dentalclinic-service/internal/app/delivery/http/middlewares"
	"dentalclinic-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	rateLimiter *middlewares.RateLimiter,
	pageController *controllers.PageController,
	billingController *controllers.BillingController,
	recordController *controllers.RecordController,
	siteController *controllers.SiteController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderContentDisposition, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.GlobalRateLimit())

	router.NotFound(middlewares.NotFound)

	attachPageRoutes(router, pageController)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(rateLimiter.Limit)

			r.Get("/"+constvars.ResourceHealthz, siteController.Healthz)

			r.Route("/"+constvars.ResourceBillings, func(r chi.Router) {
				attachBillingRoutes(r, billingController)
			})

			r.Route("/"+constvars.ResourceRecords, func(r chi.Router) {
				attachRecordRoutes(r, recordController)
			})

			r.Route("/"+constvars.ResourceSite, func(r chi.Router) {
				attachSiteRoutes(r, siteController)
			})
		})
	})
}

