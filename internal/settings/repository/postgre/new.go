package postgre

import (
	"database/sql"

	"timelog-assistant/internal/settings/repository"
	"timelog-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed configuration Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("settings/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
