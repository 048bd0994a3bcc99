package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public API surface. Everything lives under /api and
// nothing is authenticated: the admin dashboard talks to the same endpoints
// as the public site.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Video endpoints
		r.Get("/videos", handlers.videoHandler.getAllVideos())
		r.Post("/videos", handlers.videoHandler.createVideo())
		r.Get("/videos/{videoID}", handlers.videoHandler.getVideo())
		r.Put("/videos/{videoID}", handlers.videoHandler.updateVideo())
		r.Delete("/videos/{videoID}", handlers.videoHandler.deleteVideo())

		// Contact form endpoints (no update: submissions are immutable)
		r.Get("/contacts", handlers.contactHandler.getAllContacts())
		r.Post("/contacts", handlers.contactHandler.createContact())
		r.Delete("/contacts/{contactID}", handlers.contactHandler.deleteContact())

		// Contact info endpoints
		r.Get("/contact-info", handlers.contactInfoHandler.getAllContactInfo())
		r.Get("/contact-info/type/{type}", handlers.contactInfoHandler.getContactInfoByType())
		r.Post("/contact-info", handlers.contactInfoHandler.createContactInfo())
		r.Put("/contact-info/{contactInfoID}", handlers.contactInfoHandler.updateContactInfo())
		r.Delete("/contact-info/{contactInfoID}", handlers.contactInfoHandler.deleteContactInfo())

		// Thumbnail proxy
		r.Get("/thumbnails/{platform}", handlers.thumbnailHandler.getThumbnail())
	})
}

type healthHandler struct {
	responder Responder
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "Server is running",
		})
	}
}
