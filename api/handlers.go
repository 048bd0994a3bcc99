package api

import (
	"github.com/errands-sys/portfolio-backend/database"
	"github.com/errands-sys/portfolio-backend/services"
	"github.com/rs/zerolog/log"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		healthHandler:      healthHandler{responder: NewResponder(log.With().Str("handlerName", "healthHandler").Logger())},
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		videoHandler:       newVideoHandler(database.VideoRepo()),
		contactHandler:     newContactHandler(database.ContactRepo()),
		contactInfoHandler: newContactInfoHandler(database.ContactInfoRepo()),
		thumbnailHandler:   newThumbnailHandler(services.NewOEmbedClient()),
	}
}
