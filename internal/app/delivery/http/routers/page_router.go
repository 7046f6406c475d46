package routers

import (
	"dentalclinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, pageController *controllers.PageController) {
	router.Get(controllers.PathHome, pageController.Home)
	router.Get(controllers.PathOwnerBilling, pageController.OwnerBilling)
	router.Get(controllers.PathPatientRecords, pageController.PatientRecords)
}
