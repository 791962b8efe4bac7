package routers

import (
	"sutra-service/internal/app/delivery/http/middlewares"
	"sutra-service/internal/app/services/assembly"
	"sutra-service/internal/app/services/sessions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *sessions.SessionController) {
	router.Post("/", sessionController.CreateSession)
	router.Get("/{session_id}", sessionController.FindSessionByID)
	router.Patch("/{session_id}", sessionController.UpdateSession)
	router.Delete("/{session_id}", sessionController.DeleteSessionByID)

	router.Post("/{session_id}/entries", sessionController.AddEntry)
	router.Put("/{session_id}/entries/{entry_index}", sessionController.UpdateEntry)
	router.Delete("/{session_id}/entries/{entry_index}", sessionController.RemoveEntry)

	router.Post("/{session_id}/attachments", sessionController.UploadAttachment)
}

func attachAssemblyRoutes(router chi.Router, limiter *middlewares.RateLimiter, assemblyController *assembly.AssemblyController) {
	router.With(limiter.Limit).Post("/{session_id}/document", assemblyController.AssembleDocument)
}
