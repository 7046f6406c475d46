package routers

import (
	"dentalclinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSiteRoutes(router chi.Router, siteController *controllers.SiteController) {
	router.Get("/", siteController.GetContent)
}
