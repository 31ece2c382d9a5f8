package places

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// ErrNotFound is returned when no saved place has the requested name
var ErrNotFound = errors.New("place not found")

// Repository handles persistence for saved places
type Repository struct {
	db *sql.DB
}

// NewRepository opens the database at dbPath and ensures the schema exists
func NewRepository(dbPath string) (*Repository, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureUserSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Repository{db: db}, nil
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}

// SavePlace saves a place, replacing any existing place with the same name
func (r *Repository) SavePlace(place *models.Place) error {
	query := `
		INSERT INTO saved_places (name, query, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			query = excluded.query,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			created_at = excluded.created_at
	`

	if place.CreatedAt.IsZero() {
		place.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(query,
		place.Name,
		place.Query,
		place.Latitude,
		place.Longitude,
		place.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving place: %w", err)
	}

	// LastInsertId is unreliable on upsert, look the row up instead
	if err := r.db.QueryRow("SELECT id FROM saved_places WHERE name = ?", place.Name).Scan(&place.ID); err != nil {
		return fmt.Errorf("getting place id: %w", err)
	}

	return nil
}

// ListPlaces retrieves all saved places ordered by name
func (r *Repository) ListPlaces() ([]models.Place, error) {
	rows, err := r.db.Query("SELECT id, name, query, latitude, longitude, created_at FROM saved_places ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}

	return places, rows.Err()
}

// GetPlace retrieves a saved place by name
func (r *Repository) GetPlace(name string) (*models.Place, error) {
	row := r.db.QueryRow("SELECT id, name, query, latitude, longitude, created_at FROM saved_places WHERE name = ?", name)

	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlace removes a place by name
func (r *Repository) DeletePlace(name string) error {
	res, err := r.db.Exec("DELETE FROM saved_places WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlace(s scanner) (models.Place, error) {
	var p models.Place
	var query sql.NullString // Handle potential nulls

	if err := s.Scan(&p.ID, &p.Name, &query, &p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scanning place: %w", err)
	}
	p.Query = query.String
	return p, nil
}
