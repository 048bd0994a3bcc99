package database

import (
	"context"

	"github.com/errands-sys/portfolio-backend/models"
)

// ContactRepo stores inquiries submitted through the public contact form.
// Contacts are append-only: there is deliberately no Update method.
type ContactRepo struct {
	store *Store
}

func NewContactRepo(store *Store) *ContactRepo {
	return &ContactRepo{store}
}

func contactFromRow(row Row) *models.Contact {
	return &models.Contact{
		ID:        row.Int64("id"),
		Name:      row.String("name"),
		Email:     row.String("email"),
		Message:   row.String("message"),
		CreatedAt: row.Time("created_at"),
	}
}

// FindAll returns all contact submissions, newest first.
func (r *ContactRepo) FindAll(ctx context.Context) ([]*models.Contact, error) {
	rows, err := r.store.FetchAll(ctx, "SELECT * FROM contacts ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	contacts := make([]*models.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, contactFromRow(row))
	}
	return contacts, nil
}

// FindByID returns a contact by its ID, or nil when no such row exists.
func (r *ContactRepo) FindByID(ctx context.Context, id int64) (*models.Contact, error) {
	row, err := r.store.FetchOne(ctx, "SELECT * FROM contacts WHERE id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	return contactFromRow(row), nil
}

// Add inserts a new contact submission and returns its identity.
func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) (int64, error) {
	result, err := r.store.Execute(ctx,
		"INSERT INTO contacts (name, email, message) VALUES (?, ?, ?)",
		contact.Name, contact.Email, contact.Message)
	if err != nil {
		return 0, err
	}
	return result.InsertedID, nil
}

// Delete removes a contact submission by id. Returns the rows affected.
func (r *ContactRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.store.Execute(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}
