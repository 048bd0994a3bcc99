package models

import "time"

// Contact info types accepted by the contact_info table
const (
	ContactInfoTypePhone = "phone"
	ContactInfoTypeEmail = "email"
)

// ContactInfo is a displayable phone number or email address entry.
// DisplayOrder controls presentation sorting only; ties sort by ID.
type ContactInfo struct {
	ID           int64     `json:"id" db:"id"`
	Type         string    `json:"type" db:"type"`
	Value        string    `json:"value" db:"value"`
	Label        *string   `json:"label" db:"label"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ValidContactInfoType reports whether t is one of the permitted type values.
func ValidContactInfoType(t string) bool {
	return t == ContactInfoTypePhone || t == ContactInfoTypeEmail
}
