package database

import (
	"context"

	"github.com/errands-sys/portfolio-backend/errs"
)

// Per-dialect DDL. The two backends differ in their auto-increment identity
// idiom and timestamp column type; everything else is shared.
var sqliteSchema = map[string]string{
	"projects": `
		CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			image TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	"videos": `
		CREATE TABLE IF NOT EXISTS videos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	"contacts": `
		CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	"contact_info": `
		CREATE TABLE IF NOT EXISTS contact_info (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL CHECK(type IN ('phone', 'email')),
			value TEXT NOT NULL,
			label TEXT,
			display_order INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
}

var postgresSchema = map[string]string{
	"projects": `
		CREATE TABLE IF NOT EXISTS projects (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			image TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	"videos": `
		CREATE TABLE IF NOT EXISTS videos (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	"contacts": `
		CREATE TABLE IF NOT EXISTS contacts (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	"contact_info": `
		CREATE TABLE IF NOT EXISTS contact_info (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL CHECK(type IN ('phone', 'email')),
			value TEXT NOT NULL,
			label TEXT,
			display_order INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
}

// schemaTables fixes creation order so failures are reported deterministically.
var schemaTables = []string{"projects", "videos", "contacts", "contact_info"}

// InitSchema creates the four tables on the active backend if they do not
// already exist. Safe to call on every process start. A failure here is
// fatal: the caller must not serve requests over a store without its schema.
func (s *Store) InitSchema(ctx context.Context) error {
	schema := sqliteSchema
	if s.dialect == DialectPostgres {
		schema = postgresSchema
	}

	for _, table := range schemaTables {
		if err := s.Exec(ctx, schema[table]); err != nil {
			return errs.NewSchemaError(table, err)
		}
	}
	return nil
}
