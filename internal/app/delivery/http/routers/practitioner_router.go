package routers

import (
	"sutra-service/internal/app/services/practitioners"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, practitionerController *practitioners.PractitionerController) {
	router.Get("/", practitionerController.ListPractitioners)
}
