package memory

import (
	"context"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

type PostRepo struct {
	records *Collection[uuid.UUID, domain.Post]
}

func NewPostRepo() *PostRepo {
	return &PostRepo{
		records: NewCollection[uuid.UUID](func(p domain.Post) domain.Post {
			return p
		}),
	}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	return r.records.Insert(post.ID, *post)
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	p, ok := r.records.Get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return r.records.List(), nil
}

func (r *PostRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	return r.records.Select(func(p domain.Post) bool {
		return p.UserID == userID
	}), nil
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	if !r.records.Replace(post.ID, *post) {
		return ErrNoRecord
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.records.Delete(id); !ok {
		return ErrNoRecord
	}
	return nil
}
