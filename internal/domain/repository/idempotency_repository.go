package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	// GetByKey returns the stored key for a user, or nil when unseen
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// DeleteExpired removes keys past their expiry
	DeleteExpired(ctx context.Context) error
}
