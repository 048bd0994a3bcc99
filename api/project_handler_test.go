package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/errands-sys/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create
	rec := doRequest(t, router, http.MethodPost, "/api/projects", map[string]string{
		"title":       "T",
		"description": "D",
		"image":       "http://x/i.jpg",
		"category":    "C",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[models.Project](t, rec)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, "T", created.Title)
	assert.False(t, created.CreatedAt.IsZero())

	// List contains exactly the created project
	rec = doRequest(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.Project](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// Full-replace update
	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), map[string]string{
		"title":       "T2",
		"description": "D",
		"image":       "http://x/i.jpg",
		"category":    "C",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Project](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "T2", updated.Title)

	// Delete
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project deleted successfully", decodeBody[map[string]string](t, rec)["message"])

	// Gone
	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", errorMessage(t, rec))
}

func TestProjectCreateAssignsFreshIdentities(t *testing.T) {
	router := newTestRouter(t)

	seen := map[int64]bool{}
	for i := 0; i < 3; i++ {
		rec := doRequest(t, router, http.MethodPost, "/api/projects", map[string]string{
			"title":       fmt.Sprintf("P%d", i),
			"description": "d",
			"image":       "http://x/i.jpg",
			"category":    "c",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeBody[models.Project](t, rec)
		assert.False(t, seen[created.ID], "identity %d returned twice", created.ID)
		seen[created.ID] = true
	}
}

func TestProjectListNewestFirst(t *testing.T) {
	router := newTestRouter(t)

	var ids []int64
	for i := 0; i < 3; i++ {
		rec := doRequest(t, router, http.MethodPost, "/api/projects", map[string]string{
			"title":       fmt.Sprintf("P%d", i),
			"description": "d",
			"image":       "http://x/i.jpg",
			"category":    "c",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		ids = append(ids, decodeBody[models.Project](t, rec).ID)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.Project](t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
	assert.Equal(t, ids[0], list[2].ID)
}

func TestProjectCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{
		"title":       "T",
		"description": "",
		"image":       "http://x/i.jpg",
		"category":    "C",
	}

	// Rejection is idempotent: same invalid payload, same error, both times
	for i := 0; i < 2; i++ {
		rec := doRequest(t, router, http.MethodPost, "/api/projects", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "All fields are required", errorMessage(t, rec))
	}

	// No row got inserted
	rec := doRequest(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Project](t, rec))
}

func TestProjectUpdateMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/projects/999", map[string]string{
		"title":       "T",
		"description": "D",
		"image":       "http://x/i.jpg",
		"category":    "C",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", errorMessage(t, rec))
}

func TestProjectInvalidID(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doRequest(t, router, method, "/api/projects/abc", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "method %s", method)
	}
}

func TestProjectDeleteMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/projects/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/projects", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
