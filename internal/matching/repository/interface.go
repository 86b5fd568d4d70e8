package repository

import (
	"context"

	"leadintel_backend/internal/matching/domain"

	"github.com/google/uuid"
)

// Repository persists property listing snapshots for ranking.
type Repository interface {
	Insert(ctx context.Context, property domain.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
}
