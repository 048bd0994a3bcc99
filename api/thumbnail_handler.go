package api

import (
	"net/http"

	"github.com/errands-sys/portfolio-backend/errs"
	"github.com/errands-sys/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type thumbnailHandler struct {
	responder Responder
	logger    zerolog.Logger
	oembed    *services.OEmbedClient
}

func newThumbnailHandler(oembed *services.OEmbedClient) thumbnailHandler {
	logger := log.With().Str("handlerName", "thumbnailHandler").Logger()

	return thumbnailHandler{
		responder: NewResponder(logger),
		logger:    logger,
		oembed:    oembed,
	}
}

// getThumbnail proxies the platform's public oEmbed endpoint and returns the
// reduced {thumbnail, title, author} triple. No caching, no retries.
func (h thumbnailHandler) getThumbnail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform := chi.URLParam(r, "platform")
		if !h.oembed.SupportedPlatform(platform) {
			h.responder.WriteError(w, errs.NewBadRequestError("Unsupported platform: "+platform))
			return
		}

		videoURL := r.URL.Query().Get("url")
		if videoURL == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("URL parameter is required"))
			return
		}

		thumbnail, err := h.oembed.FetchThumbnail(r.Context(), platform, videoURL)
		if err != nil {
			h.responder.WriteError(w, errs.NewUpstreamError(platform, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, thumbnail)
	}
}
