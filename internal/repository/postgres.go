package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"tabiplan/internal/model"
)

// TripRepository persists trips. A trip row stores the immutable itinerary
// and the traveler's planning intent as JSONB payloads; deletes are soft so
// a trip can be restored later.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository connects to PostgreSQL
func NewTripRepository(dsn string, maxConn, maxIdleConn int) (*TripRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &TripRepository{db: db}, nil
}

// Close closes the database connection
func (r *TripRepository) Close() error {
	return r.db.Close()
}

type tripRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Days      []byte    `db:"days"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save upserts a trip. Saving a soft-deleted trip restores it. The builder
// intent is optional; nil leaves the stored intent untouched.
func (r *TripRepository) Save(ctx context.Context, trip *model.Trip, builder *model.TripBuilderData) error {
	daysJSON, err := json.Marshal(trip.Days)
	if err != nil {
		return fmt.Errorf("failed to encode trip days: %w", err)
	}

	var builderJSON []byte
	if builder != nil {
		builderJSON, err = json.Marshal(builder)
		if err != nil {
			return fmt.Errorf("failed to encode builder data: %w", err)
		}
	}

	query := `
		INSERT INTO trips (id, name, days, builder, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, NULL)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			days = EXCLUDED.days,
			builder = COALESCE(EXCLUDED.builder, trips.builder),
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL
	`
	_, err = r.db.ExecContext(ctx, query, trip.ID, trip.Name, daysJSON, builderJSON, trip.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

// Get fetches a trip by id, or (nil, nil) when it does not exist or has
// been soft-deleted
func (r *TripRepository) Get(ctx context.Context, id string) (*model.Trip, error) {
	var row tripRow
	query := `
		SELECT id, name, days, updated_at
		FROM trips
		WHERE id = $1 AND deleted_at IS NULL
	`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return row.toTrip()
}

// GetBuilder fetches the stored planning intent for a trip, or (nil, nil)
// when absent
func (r *TripRepository) GetBuilder(ctx context.Context, id string) (*model.TripBuilderData, error) {
	var raw []byte
	query := `SELECT builder FROM trips WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &raw, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get builder data: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var builder model.TripBuilderData
	if err := json.Unmarshal(raw, &builder); err != nil {
		return nil, fmt.Errorf("failed to decode builder data: %w", err)
	}
	return &builder, nil
}

// List returns all live trips, most recently updated first
func (r *TripRepository) List(ctx context.Context) ([]*model.Trip, error) {
	var rows []tripRow
	query := `
		SELECT id, name, days, updated_at
		FROM trips
		WHERE deleted_at IS NULL
		ORDER BY updated_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	trips := make([]*model.Trip, 0, len(rows))
	for _, row := range rows {
		trip, err := row.toTrip()
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// SoftDelete marks a trip deleted. Deleting an unknown or already deleted
// trip reports found=false, not an error.
func (r *TripRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	query := `UPDATE trips SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	return affected > 0, nil
}

func (row tripRow) toTrip() (*model.Trip, error) {
	var days []*model.TripDay
	if len(row.Days) > 0 {
		if err := json.Unmarshal(row.Days, &days); err != nil {
			return nil, fmt.Errorf("failed to decode trip days: %w", err)
		}
	}
	return &model.Trip{
		ID:        row.ID,
		Name:      row.Name,
		Days:      days,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
