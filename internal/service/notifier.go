package service

import (
	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

// Notifier receives entity lifecycle events. The WebSocket hub implements it;
// tests use NopNotifier.
type Notifier interface {
	NotifyUserCreated(user *domain.User)
	NotifyUserDeleted(id uuid.UUID)
	NotifyProfileCreated(profile *domain.Profile)
	NotifyProfileDeleted(id uuid.UUID)
	NotifyPostCreated(post *domain.Post)
	NotifyPostDeleted(id uuid.UUID)
}

type NopNotifier struct{}

func (NopNotifier) NotifyUserCreated(*domain.User)       {}
func (NopNotifier) NotifyUserDeleted(uuid.UUID)          {}
func (NopNotifier) NotifyProfileCreated(*domain.Profile) {}
func (NopNotifier) NotifyProfileDeleted(uuid.UUID)       {}
func (NopNotifier) NotifyPostCreated(*domain.Post)       {}
func (NopNotifier) NotifyPostDeleted(uuid.UUID)          {}
