package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/errands-sys/portfolio-backend/database"
	"github.com/errands-sys/portfolio-backend/errs"
	"github.com/errands-sys/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Accepts local@domain.tld with no embedded whitespace; nothing fancier.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

func validateContact(contact *models.Contact) error {
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return errs.NewBadRequestError("All fields are required")
	}
	if !emailRegex.MatchString(contact.Email) {
		return errs.NewBadRequestError("Invalid email format")
	}
	return nil
}

// getAllContacts retrieves all contact form submissions, newest first
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, contacts)
	}
}

// createContact records a public contact form submission
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact models.Contact
		if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateContact(&contact); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.contactRepo.Add(r.Context(), &contact)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		created, err := h.contactRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "contact", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, created)
	}
}

// deleteContact removes a submission; the admin dashboard's only write on contacts
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseID(chi.URLParam(r, "contactID"), "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.contactRepo.Delete(r.Context(), contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Contact deleted successfully",
		})
	}
}
