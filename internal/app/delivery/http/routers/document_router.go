package routers

import (
	"sutra-service/internal/app/services/documents"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, documentController *documents.DocumentController) {
	router.Get("/", documentController.ListDocuments)
}
