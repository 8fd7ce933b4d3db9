package repository

import (
	"context"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

// Repositories return (nil, nil) when a record does not exist; services
// translate the nil into their own not-found errors.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// ListSubscribedTo returns the users whose subscription list contains
	// the given user id.
	ListSubscribedTo(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.MemberType, error)
	List(ctx context.Context) ([]domain.MemberType, error)
	Update(ctx context.Context, mt *domain.MemberType) error
}
