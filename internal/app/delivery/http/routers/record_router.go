package routers

import (
	"dentalclinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, recordController *controllers.RecordController) {
	router.Get("/", recordController.FindAll)
	router.Get("/export", recordController.Export)
}
