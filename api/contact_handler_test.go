package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/errands-sys/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitAndAdminDelete(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contacts", map[string]string{
		"name":    "Sarah Johnson",
		"email":   "sarah.johnson@techcorp.com",
		"message": "Could we schedule a call this week?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[models.Contact](t, rec)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, "sarah.johnson@techcorp.com", created.Email)

	rec = doRequest(t, router, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Contact](t, rec), 1)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Contact deleted successfully", decodeBody[map[string]string](t, rec)["message"])

	rec = doRequest(t, router, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Contact](t, rec))
}

func TestContactEmailValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		email string
		want  int
	}{
		{"a@b.com", http.StatusCreated},
		{"not-an-email", http.StatusBadRequest},
		{"a@b", http.StatusBadRequest},
		{"a b@c.com", http.StatusBadRequest},
		{"a@b c.com", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/contacts", map[string]string{
				"name":    "Tester",
				"email":   tt.email,
				"message": "hello",
			})
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusBadRequest {
				assert.Equal(t, "Invalid email format", errorMessage(t, rec))
			}
		})
	}
}

func TestContactMissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contacts", map[string]string{
		"name":  "Tester",
		"email": "a@b.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", errorMessage(t, rec))
}

func TestContactDeleteMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/contacts/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Contact not found", errorMessage(t, rec))
}
