package database

import (
	"context"

	"github.com/errands-sys/portfolio-backend/models"
)

type ContactInfoRepo struct {
	store *Store
}

func NewContactInfoRepo(store *Store) *ContactInfoRepo {
	return &ContactInfoRepo{store}
}

func contactInfoFromRow(row Row) *models.ContactInfo {
	return &models.ContactInfo{
		ID:           row.Int64("id"),
		Type:         row.String("type"),
		Value:        row.String("value"),
		Label:        row.NullString("label"),
		DisplayOrder: row.Int("display_order"),
		CreatedAt:    row.Time("created_at"),
	}
}

// FindAll returns all contact info entries ordered for display. Ties on
// display_order break by ascending identity.
func (r *ContactInfoRepo) FindAll(ctx context.Context) ([]*models.ContactInfo, error) {
	rows, err := r.store.FetchAll(ctx,
		"SELECT * FROM contact_info ORDER BY display_order ASC, id ASC")
	if err != nil {
		return nil, err
	}

	entries := make([]*models.ContactInfo, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, contactInfoFromRow(row))
	}
	return entries, nil
}

// FindByType returns entries of one type (phone or email), display order.
func (r *ContactInfoRepo) FindByType(ctx context.Context, infoType string) ([]*models.ContactInfo, error) {
	rows, err := r.store.FetchAll(ctx,
		"SELECT * FROM contact_info WHERE type = ? ORDER BY display_order ASC, id ASC", infoType)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.ContactInfo, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, contactInfoFromRow(row))
	}
	return entries, nil
}

// FindByID returns a contact info entry by its ID, or nil when absent.
func (r *ContactInfoRepo) FindByID(ctx context.Context, id int64) (*models.ContactInfo, error) {
	row, err := r.store.FetchOne(ctx, "SELECT * FROM contact_info WHERE id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	return contactInfoFromRow(row), nil
}

// Add inserts a new entry and returns its backend-assigned identity.
func (r *ContactInfoRepo) Add(ctx context.Context, info *models.ContactInfo) (int64, error) {
	result, err := r.store.Execute(ctx,
		"INSERT INTO contact_info (type, value, label, display_order) VALUES (?, ?, ?, ?)",
		info.Type, info.Value, info.Label, info.DisplayOrder)
	if err != nil {
		return 0, err
	}
	return result.InsertedID, nil
}

// Update replaces every mutable field of the entry with the given id.
func (r *ContactInfoRepo) Update(ctx context.Context, id int64, info *models.ContactInfo) (int64, error) {
	result, err := r.store.Execute(ctx,
		"UPDATE contact_info SET type = ?, value = ?, label = ?, display_order = ? WHERE id = ?",
		info.Type, info.Value, info.Label, info.DisplayOrder, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

// Delete removes an entry by id. Returns the number of rows affected.
func (r *ContactInfoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.store.Execute(ctx, "DELETE FROM contact_info WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}
