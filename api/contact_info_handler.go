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

type contactInfoHandler struct {
	responder       Responder
	logger          zerolog.Logger
	contactInfoRepo *database.ContactInfoRepo
}

func newContactInfoHandler(contactInfoRepo *database.ContactInfoRepo) contactInfoHandler {
	logger := log.With().Str("handlerName", "contactInfoHandler").Logger()

	return contactInfoHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		contactInfoRepo: contactInfoRepo,
	}
}

// Label is optional and display_order defaults to zero; type and value carry
// the whole contract.
func validateContactInfo(info *models.ContactInfo) error {
	if info.Type == "" || info.Value == "" {
		return errs.NewBadRequestError("Type and value are required")
	}
	if !models.ValidContactInfoType(info.Type) {
		return errs.NewBadRequestError(`Type must be either "phone" or "email"`)
	}
	return nil
}

// getAllContactInfo retrieves all entries in display order
func (h contactInfoHandler) getAllContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.contactInfoRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact info", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, entries)
	}
}

// getContactInfoByType retrieves only phone or only email entries
func (h contactInfoHandler) getContactInfoByType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infoType := chi.URLParam(r, "type")

		entries, err := h.contactInfoRepo.FindByType(r.Context(), infoType)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact info", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, entries)
	}
}

// createContactInfo creates a new entry and returns it re-fetched
func (h contactInfoHandler) createContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var info models.ContactInfo
		if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact info request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateContactInfo(&info); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.contactInfoRepo.Add(r.Context(), &info)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact info", err))
			return
		}

		created, err := h.contactInfoRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "contact info", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, created)
	}
}

// updateContactInfo replaces every field of an existing entry
func (h contactInfoHandler) updateContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactInfoID, err := parseID(chi.URLParam(r, "contactInfoID"), "contactInfoID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var info models.ContactInfo
		if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact info request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateContactInfo(&info); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.contactInfoRepo.Update(r.Context(), contactInfoID, &info)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact info", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact info not found"))
			return
		}

		updated, err := h.contactInfoRepo.FindByID(r.Context(), contactInfoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "contact info", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, updated)
	}
}

// deleteContactInfo removes an entry by ID
func (h contactInfoHandler) deleteContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactInfoID, err := parseID(chi.URLParam(r, "contactInfoID"), "contactInfoID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.contactInfoRepo.Delete(r.Context(), contactInfoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact info", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact info not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Contact info deleted successfully",
		})
	}
}
