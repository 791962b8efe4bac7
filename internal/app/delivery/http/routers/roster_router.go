package routers

import (
	"sutra-service/internal/app/services/roster"

	"github.com/go-chi/chi/v5"
)

func attachRosterRoutes(router chi.Router, rosterController *roster.RosterController) {
	router.Get("/patients", rosterController.ListPatients)
}
