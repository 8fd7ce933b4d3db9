package service

import (
	"context"
	"errors"
	"fmt"

	"socialgraph/internal/domain"
	"socialgraph/internal/repository"
)

var (
	ErrMemberTypeNotFound = errors.New("member type not found")
)

// MemberTypeService exposes the read-mostly reference data. Member types are
// seeded at startup; there is no create or delete operation.
type MemberTypeService struct {
	memberTypeRepo repository.MemberTypeRepository
}

func NewMemberTypeService(memberTypeRepo repository.MemberTypeRepository) *MemberTypeService {
	return &MemberTypeService{memberTypeRepo: memberTypeRepo}
}

type UpdateMemberTypeInput struct {
	Discount        *int `json:"discount"`
	MonthPostsLimit *int `json:"monthPostsLimit"`
}

func (s *MemberTypeService) List(ctx context.Context) ([]domain.MemberType, error) {
	return s.memberTypeRepo.List(ctx)
}

func (s *MemberTypeService) GetByID(ctx context.Context, id string) (*domain.MemberType, error) {
	mt, err := s.memberTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, ErrMemberTypeNotFound
	}
	return mt, nil
}

func (s *MemberTypeService) Update(ctx context.Context, id string, input UpdateMemberTypeInput) (*domain.MemberType, error) {
	mt, err := s.memberTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, ErrMemberTypeNotFound
	}

	if input.Discount != nil {
		mt.Discount = *input.Discount
	}
	if input.MonthPostsLimit != nil {
		mt.MonthPostsLimit = *input.MonthPostsLimit
	}

	if err := s.memberTypeRepo.Update(ctx, mt); err != nil {
		return nil, fmt.Errorf("updating member type: %w", err)
	}

	return mt, nil
}
