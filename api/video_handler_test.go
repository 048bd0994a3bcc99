package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/errands-sys/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/videos", map[string]string{
		"title":       "Company Overview 2024",
		"url":         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"description": "Our journey, values, and vision.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Video](t, rec)
	assert.Greater(t, created.ID, int64(0))

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/videos/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.URL, decodeBody[models.Video](t, rec).URL)

	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/videos/%d", created.ID), map[string]string{
		"title":       "Company Overview 2025",
		"url":         created.URL,
		"description": created.Description,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Company Overview 2025", decodeBody[models.Video](t, rec).Title)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/videos/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/videos/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", errorMessage(t, rec))
}

func TestVideoCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/videos", map[string]string{
		"title":       "No URL",
		"description": "missing the link",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", errorMessage(t, rec))
}
