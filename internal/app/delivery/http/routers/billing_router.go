package routers

import (
	"dentalclinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, billingController *controllers.BillingController) {
	router.Get("/", billingController.FindAll)
	router.Get("/export", billingController.Export)
}
