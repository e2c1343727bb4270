package repository

import (
	"context"
	"database/sql"
	"time"

	"home_security/internal/models"

	"github.com/google/uuid"
)

type IntrusionSQLite struct {
	db *sql.DB
}

func NewIntrusionSQLite(db *sql.DB) *IntrusionSQLite { return &IntrusionSQLite{db: db} }

const (
	insertIntrusionSQL = `
		INSERT INTO motion_events (id, occurred_at, details)
		VALUES (?, ?, ?)
	`

	selectIntrusionsSQL = `
		SELECT occurred_at, details FROM motion_events
		WHERE occurred_at >= ? AND occurred_at <= ?
		ORDER BY occurred_at ASC
	`

	// SQLite TIMESTAMP format
	sqliteTimeLayout = "2006-01-02 15:04:05"
)

// Append inserts one motion event. An empty timestamp is stamped with UTC now;
// empty details default to the standard message.
func (r *IntrusionSQLite) Append(ctx context.Context, e models.IntrusionEvent) error {
	occurredAt := e.Timestamp
	if occurredAt == "" {
		occurredAt = time.Now().UTC().Format(time.RFC3339)
	}
	details := e.Details
	if details == "" {
		details = "Motion detected"
	}

	// Store RFC3339 timestamps normalized to the SQLite layout so range
	// comparisons work lexically.
	if t, err := time.Parse(time.RFC3339, occurredAt); err == nil {
		occurredAt = t.UTC().Format(sqliteTimeLayout)
	}

	_, err := r.db.ExecContext(ctx, insertIntrusionSQL, uuid.NewString(), occurredAt, details)
	return err
}

// ListDay returns events in [from, to], oldest first.
func (r *IntrusionSQLite) ListDay(ctx context.Context, from, to time.Time) ([]models.IntrusionEvent, error) {
	rows, err := r.db.QueryContext(ctx, selectIntrusionsSQL,
		from.UTC().Format(sqliteTimeLayout),
		to.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []models.IntrusionEvent
	for rows.Next() {
		var occurredAt, details string
		if err := rows.Scan(&occurredAt, &details); err != nil {
			return nil, err
		}
		// Re-render stored timestamps as RFC3339 UTC for the API surface.
		if t, err := time.Parse(sqliteTimeLayout, occurredAt); err == nil {
			occurredAt = t.UTC().Format(time.RFC3339)
		}
		events = append(events, models.IntrusionEvent{Timestamp: occurredAt, Details: details})
	}
	return events, rows.Err()
}
