package database

import (
	"github.com/errands-sys/portfolio-backend/config"
)

type Database struct {
	store           *Store
	projectRepo     *ProjectRepo
	videoRepo       *VideoRepo
	contactRepo     *ContactRepo
	contactInfoRepo *ContactInfoRepo
}

// New initializes a new Database struct with each repository using a shared Store
func New(store *Store) Database {
	return Database{
		store:           store,
		projectRepo:     NewProjectRepo(store),
		videoRepo:       NewVideoRepo(store),
		contactRepo:     NewContactRepo(store),
		contactInfoRepo: NewContactInfoRepo(store),
	}
}

// Open selects and opens the backend from environment configuration: a
// connection string (DATABASE_URL, or PGHOST for platforms that split the
// DSN) selects PostgreSQL, otherwise the embedded SQLite file is used.
func Open(cfg map[string]string) (*Store, error) {
	if connStr := config.GetString(cfg, "DATABASE_URL", ""); connStr != "" {
		return OpenPostgres(connStr)
	}
	if config.GetString(cfg, "PGHOST", "") != "" {
		// pgx assembles the DSN from the standard PG* variables
		return OpenPostgres("")
	}
	return OpenSQLite(config.GetString(cfg, "SQLITE_PATH", "database.sqlite"))
}

// Accessor methods for each repository

func (d Database) Store() *Store {
	return d.store
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) VideoRepo() *VideoRepo {
	return d.videoRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) ContactInfoRepo() *ContactInfoRepo {
	return d.contactInfoRepo
}
