package models

import "time"

// Contact is an inquiry submitted through the public contact form.
// Contacts are created once and never updated; admins may delete them.
type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
