package api

import (
	"encoding/json"
	"net/http"

	"github.com/errands-sys/portfolio-backend/database"
	"github.com/errands-sys/portfolio-backend/errs"
	"github.com/errands-sys/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type videoHandler struct {
	responder Responder
	logger    zerolog.Logger
	videoRepo *database.VideoRepo
}

func newVideoHandler(videoRepo *database.VideoRepo) videoHandler {
	logger := log.With().Str("handlerName", "videoHandler").Logger()

	return videoHandler{
		responder: NewResponder(logger),
		logger:    logger,
		videoRepo: videoRepo,
	}
}

// The URL is required but not validated as a playable video link; the
// frontend embeds whatever it is given.
func validateVideo(video *models.Video) error {
	if video.Title == "" || video.URL == "" || video.Description == "" {
		return errs.NewBadRequestError("All fields are required")
	}
	return nil
}

// getAllVideos retrieves all videos, newest first
func (h videoHandler) getAllVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videoRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "videos", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, videos)
	}
}

// getVideo retrieves a specific video by ID
func (h videoHandler) getVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, err := parseID(chi.URLParam(r, "videoID"), "videoID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		video, err := h.videoRepo.FindByID(r.Context(), videoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "video", err))
			return
		}
		if video == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Video not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, video)
	}
}

// createVideo creates a new video and returns it re-fetched by its new identity
func (h videoHandler) createVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var video models.Video
		if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode video request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateVideo(&video); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.videoRepo.Add(r.Context(), &video)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "video", err))
			return
		}

		created, err := h.videoRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "video", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, created)
	}
}

// updateVideo replaces every field of an existing video
func (h videoHandler) updateVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, err := parseID(chi.URLParam(r, "videoID"), "videoID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var video models.Video
		if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode video request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateVideo(&video); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.videoRepo.Update(r.Context(), videoID, &video)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "video", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Video not found"))
			return
		}

		updated, err := h.videoRepo.FindByID(r.Context(), videoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "video", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, updated)
	}
}

// deleteVideo deletes a video by ID
func (h videoHandler) deleteVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, err := parseID(chi.URLParam(r, "videoID"), "videoID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.videoRepo.Delete(r.Context(), videoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "video", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Video not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Video deleted successfully",
		})
	}
}
