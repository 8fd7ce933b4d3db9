package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
	"socialgraph/internal/repository"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileExists     = errors.New("user already has a profile")
	ErrUnknownUser       = errors.New("referenced user does not exist")
	ErrUnknownMemberType = errors.New("referenced member type does not exist")
)

type ProfileService struct {
	profileRepo    repository.ProfileRepository
	userRepo       repository.UserRepository
	memberTypeRepo repository.MemberTypeRepository
	notifier       Notifier
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	memberTypeRepo repository.MemberTypeRepository,
	notifier Notifier,
) *ProfileService {
	return &ProfileService{
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		memberTypeRepo: memberTypeRepo,
		notifier:       notifier,
	}
}

type CreateProfileInput struct {
	UserID       uuid.UUID `json:"userId"`
	MemberTypeID string    `json:"memberTypeId"`
	Avatar       string    `json:"avatar"`
	Sex          string    `json:"sex"`
	Birthday     int64     `json:"birthday"`
	Country      string    `json:"country"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
}

type UpdateProfileInput struct {
	MemberTypeID *string `json:"memberTypeId"`
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int64  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Create admits a profile only when its owner exists, its member type
// exists, and the owner does not already have a profile.
func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	owner, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUnknownUser
	}

	mt, err := s.memberTypeRepo.GetByID(ctx, input.MemberTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, ErrUnknownMemberType
	}

	existing, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := &domain.Profile{
		ID:           uuid.New(),
		UserID:       input.UserID,
		MemberTypeID: input.MemberTypeID,
		Avatar:       input.Avatar,
		Sex:          input.Sex,
		Birthday:     input.Birthday,
		Country:      input.Country,
		Street:       input.Street,
		City:         input.City,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	s.notifier.NotifyProfileCreated(profile)
	return profile, nil
}

// Update merges the set fields into the stored profile. Foreign keys are not
// re-validated here; only Create gates them.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if input.MemberTypeID != nil {
		profile.MemberTypeID = *input.MemberTypeID
	}
	if input.Avatar != nil {
		profile.Avatar = *input.Avatar
	}
	if input.Sex != nil {
		profile.Sex = *input.Sex
	}
	if input.Birthday != nil {
		profile.Birthday = *input.Birthday
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.Street != nil {
		profile.Street = *input.Street
	}
	if input.City != nil {
		profile.City = *input.City
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting profile: %w", err)
	}

	s.notifier.NotifyProfileDeleted(id)
	return profile, nil
}
