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
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("user id is not a valid v4 UUID")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrSelfSubscription   = errors.New("cannot subscribe to yourself")
	ErrNotSubscribed      = errors.New("no subscription to this user exists")
)

type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	notifier    Notifier
}

func NewUserService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	notifier Notifier,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		notifier:    notifier,
	}
}

type CreateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UpdateUserInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		ID:                  uuid.New(),
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		SubscribedToUserIDs: []uuid.UUID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.notifier.NotifyUserCreated(user)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}

// Delete removes a user and, before that, every record depending on it:
// the user's profiles, the user's posts, and every inbound subscription
// entry held by other users. The steps run in that fixed order with no
// cross-store transaction; by the time the user record itself is removed,
// nothing else references it.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	// Format check comes before the existence check.
	if id.Version() != 4 {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profiles, err := s.profileRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if err := s.profileRepo.Delete(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("deleting profile %s: %w", p.ID, err)
		}
	}

	posts, err := s.postRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if err := s.postRepo.Delete(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("deleting post %s: %w", p.ID, err)
		}
	}

	subscribers, err := s.userRepo.ListSubscribedTo(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range subscribers {
		sub := &subscribers[i]
		sub.Unsubscribe(id)
		if err := s.userRepo.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("scrubbing subscription of %s: %w", sub.ID, err)
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	s.notifier.NotifyUserDeleted(id)
	return user, nil
}

// SubscribeTo makes the subscriber follow the target and returns the target.
// The append is unconditional: subscribing twice to the same user leaves two
// entries in the subscriber's list.
func (s *UserService) SubscribeTo(ctx context.Context, targetID, subscriberID uuid.UUID) (*domain.User, error) {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	subscriber, err := s.userRepo.GetByID(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, ErrSubscriberNotFound
	}

	if targetID == subscriberID {
		return nil, ErrSelfSubscription
	}

	subscriber.SubscribedToUserIDs = append(subscriber.SubscribedToUserIDs, targetID)
	if err := s.userRepo.Update(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("saving subscription: %w", err)
	}

	return target, nil
}

// UnsubscribeFrom removes one occurrence of the target from the subscriber's
// list and returns the updated subscriber.
func (s *UserService) UnsubscribeFrom(ctx context.Context, targetID, subscriberID uuid.UUID) (*domain.User, error) {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	subscriber, err := s.userRepo.GetByID(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, ErrUserNotFound
	}

	if !subscriber.Unsubscribe(targetID) {
		return nil, ErrNotSubscribed
	}

	if err := s.userRepo.Update(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("saving unsubscription: %w", err)
	}

	return subscriber, nil
}
