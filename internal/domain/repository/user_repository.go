package repository

import (
	"context"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for merchant user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// BusinessRepository defines the interface for merchant business profiles
type BusinessRepository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)
	Upsert(ctx context.Context, business *entity.Business) error
}
