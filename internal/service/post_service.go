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
	ErrPostNotFound = errors.New("post not found")
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, notifier Notifier) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type CreatePostInput struct {
	UserID  uuid.UUID `json:"userId"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Create admits a post only when its author exists.
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	author, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnknownUser
	}

	post := &domain.Post{
		ID:      uuid.New(),
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.notifier.NotifyPostCreated(post)
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting post: %w", err)
	}

	s.notifier.NotifyPostDeleted(id)
	return post, nil
}
