package database

import (
	"context"

	"github.com/errands-sys/portfolio-backend/models"
)

type ProjectRepo struct {
	store *Store
}

func NewProjectRepo(store *Store) *ProjectRepo {
	return &ProjectRepo{store}
}

func projectFromRow(row Row) *models.Project {
	return &models.Project{
		ID:          row.Int64("id"),
		Title:       row.String("title"),
		Description: row.String("description"),
		Image:       row.String("image"),
		Category:    row.String("category"),
		CreatedAt:   row.Time("created_at"),
	}
}

// FindAll returns all projects, newest first.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.store.FetchAll(ctx, "SELECT * FROM projects ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	projects := make([]*models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, projectFromRow(row))
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil when no such row exists.
func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	row, err := r.store.FetchOne(ctx, "SELECT * FROM projects WHERE id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	return projectFromRow(row), nil
}

// Add inserts a new project and returns its backend-assigned identity.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) (int64, error) {
	result, err := r.store.Execute(ctx,
		"INSERT INTO projects (title, description, image, category) VALUES (?, ?, ?, ?)",
		project.Title, project.Description, project.Image, project.Category)
	if err != nil {
		return 0, err
	}
	return result.InsertedID, nil
}

// Update replaces every mutable field of the project with the given id.
// Returns the number of rows affected; zero means no such project.
func (r *ProjectRepo) Update(ctx context.Context, id int64, project *models.Project) (int64, error) {
	result, err := r.store.Execute(ctx,
		"UPDATE projects SET title = ?, description = ?, image = ?, category = ? WHERE id = ?",
		project.Title, project.Description, project.Image, project.Category, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

// Delete removes a project by id. Returns the number of rows affected.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.store.Execute(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}
