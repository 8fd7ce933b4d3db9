package memory

import (
	"context"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

type UserRepo struct {
	records *Collection[uuid.UUID, domain.User]
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		records: NewCollection[uuid.UUID](func(u domain.User) domain.User {
			subs := make([]uuid.UUID, len(u.SubscribedToUserIDs))
			copy(subs, u.SubscribedToUserIDs)
			u.SubscribedToUserIDs = subs
			return u
		}),
	}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	return r.records.Insert(user.ID, *user)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.records.Get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.records.List(), nil
}

func (r *UserRepo) ListSubscribedTo(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	return r.records.Select(func(u domain.User) bool {
		return u.IsSubscribedTo(userID)
	}), nil
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	if !r.records.Replace(user.ID, *user) {
		return ErrNoRecord
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.records.Delete(id); !ok {
		return ErrNoRecord
	}
	return nil
}
