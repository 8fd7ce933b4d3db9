package memory

import (
	"context"

	"socialgraph/internal/domain"
)

// MemberTypeRepo holds reference data seeded once at construction. There is
// no create or delete path.
type MemberTypeRepo struct {
	records *Collection[string, domain.MemberType]
}

func NewMemberTypeRepo(seed []domain.MemberType) *MemberTypeRepo {
	r := &MemberTypeRepo{
		records: NewCollection[string](func(mt domain.MemberType) domain.MemberType {
			return mt
		}),
	}
	for _, mt := range seed {
		// seed ids are distinct by construction
		_ = r.records.Insert(mt.ID, mt)
	}
	return r
}

func (r *MemberTypeRepo) GetByID(ctx context.Context, id string) (*domain.MemberType, error) {
	mt, ok := r.records.Get(id)
	if !ok {
		return nil, nil
	}
	return &mt, nil
}

func (r *MemberTypeRepo) List(ctx context.Context) ([]domain.MemberType, error) {
	return r.records.List(), nil
}

func (r *MemberTypeRepo) Update(ctx context.Context, mt *domain.MemberType) error {
	if !r.records.Replace(mt.ID, *mt) {
		return ErrNoRecord
	}
	return nil
}
