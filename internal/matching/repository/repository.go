package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadintel_backend/internal/matching/domain"
	"leadintel_backend/platform/apperr"
)

const propertyNotFoundMessage = "property not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new properties repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Insert stores a listing snapshot.
func (r *Repo) Insert(ctx context.Context, property domain.Property) error {
	query := `
		INSERT INTO properties (id, style, features, bedrooms, neighborhood, location,
			noise_level, nearby_amenities, pet_friendly, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		property.ID, property.Style, property.Features, property.Bedrooms,
		property.Neighborhood, property.Location, property.NoiseLevel,
		property.NearbyAmenities, property.PetFriendly, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID retrieves a listing snapshot by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Property, error) {
	query := `
		SELECT id, style, features, bedrooms, neighborhood, location,
			noise_level, nearby_amenities, pet_friendly, created_at, updated_at
		FROM properties
		WHERE id = $1`

	var p domain.Property
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Style, &p.Features, &p.Bedrooms, &p.Neighborhood, &p.Location,
		&p.NoiseLevel, &p.NearbyAmenities, &p.PetFriendly, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, apperr.NotFound(propertyNotFoundMessage)
		}
		return domain.Property{}, fmt.Errorf("get property by id: %w", err)
	}

	return p, nil
}

// List retrieves all listing snapshots, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Property, error) {
	query := `
		SELECT id, style, features, bedrooms, neighborhood, location,
			noise_level, nearby_amenities, pet_friendly, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(
			&p.ID, &p.Style, &p.Features, &p.Bedrooms, &p.Neighborhood, &p.Location,
			&p.NoiseLevel, &p.NearbyAmenities, &p.PetFriendly, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}

	return properties, nil
}
