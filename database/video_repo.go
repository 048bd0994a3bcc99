package database

import (
	"context"

	"github.com/errands-sys/portfolio-backend/models"
)

type VideoRepo struct {
	store *Store
}

func NewVideoRepo(store *Store) *VideoRepo {
	return &VideoRepo{store}
}

func videoFromRow(row Row) *models.Video {
	return &models.Video{
		ID:          row.Int64("id"),
		Title:       row.String("title"),
		URL:         row.String("url"),
		Description: row.String("description"),
		CreatedAt:   row.Time("created_at"),
	}
}

// FindAll returns all videos, newest first.
func (r *VideoRepo) FindAll(ctx context.Context) ([]*models.Video, error) {
	rows, err := r.store.FetchAll(ctx, "SELECT * FROM videos ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	videos := make([]*models.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, videoFromRow(row))
	}
	return videos, nil
}

// FindByID returns a video by its ID, or nil when no such row exists.
func (r *VideoRepo) FindByID(ctx context.Context, id int64) (*models.Video, error) {
	row, err := r.store.FetchOne(ctx, "SELECT * FROM videos WHERE id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	return videoFromRow(row), nil
}

// Add inserts a new video and returns its backend-assigned identity.
func (r *VideoRepo) Add(ctx context.Context, video *models.Video) (int64, error) {
	result, err := r.store.Execute(ctx,
		"INSERT INTO videos (title, url, description) VALUES (?, ?, ?)",
		video.Title, video.URL, video.Description)
	if err != nil {
		return 0, err
	}
	return result.InsertedID, nil
}

// Update replaces every mutable field of the video with the given id.
func (r *VideoRepo) Update(ctx context.Context, id int64, video *models.Video) (int64, error) {
	result, err := r.store.Execute(ctx,
		"UPDATE videos SET title = ?, url = ?, description = ? WHERE id = ?",
		video.Title, video.URL, video.Description, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

// Delete removes a video by id. Returns the number of rows affected.
func (r *VideoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.store.Execute(ctx, "DELETE FROM videos WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}
