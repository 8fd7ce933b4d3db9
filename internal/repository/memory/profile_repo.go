package memory

import (
	"context"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

type ProfileRepo struct {
	records *Collection[uuid.UUID, domain.Profile]
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{
		records: NewCollection[uuid.UUID](func(p domain.Profile) domain.Profile {
			return p
		}),
	}
}

func (r *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return r.records.Insert(profile.ID, *profile)
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, ok := r.records.Get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, ok := r.records.First(func(p domain.Profile) bool {
		return p.UserID == userID
	})
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	return r.records.List(), nil
}

func (r *ProfileRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	return r.records.Select(func(p domain.Profile) bool {
		return p.UserID == userID
	}), nil
}

func (r *ProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	if !r.records.Replace(profile.ID, *profile) {
		return ErrNoRecord
	}
	return nil
}

func (r *ProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.records.Delete(id); !ok {
		return ErrNoRecord
	}
	return nil
}
