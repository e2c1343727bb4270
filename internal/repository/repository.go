package repository

import (
	"context"
	"database/sql"
	"time"

	"home_security/internal/models"
)

// IntrusionLog is the degraded-mode local store for motion events, used when
// the upstream feed service cannot serve a day's motion history.
type IntrusionLog interface {
	Append(ctx context.Context, e models.IntrusionEvent) error
	ListDay(ctx context.Context, from, to time.Time) ([]models.IntrusionEvent, error)
}

type Repository struct {
	Intrusions IntrusionLog
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Intrusions: NewIntrusionSQLite(db),
	}
}
