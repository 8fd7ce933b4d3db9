package ws

import (
	"log"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyUserCreated(user *domain.User) {
	n.emit(EventTypeUserCreated, UserPayload{User: *user})
}

func (n *HubNotifier) NotifyUserDeleted(id uuid.UUID) {
	n.emit(EventTypeUserDeleted, DeletedPayload{ID: id})
}

func (n *HubNotifier) NotifyProfileCreated(profile *domain.Profile) {
	n.emit(EventTypeProfileCreated, ProfilePayload{Profile: *profile})
}

func (n *HubNotifier) NotifyProfileDeleted(id uuid.UUID) {
	n.emit(EventTypeProfileDeleted, DeletedPayload{ID: id})
}

func (n *HubNotifier) NotifyPostCreated(post *domain.Post) {
	n.emit(EventTypePostCreated, PostPayload{Post: *post})
}

func (n *HubNotifier) NotifyPostDeleted(id uuid.UUID) {
	n.emit(EventTypePostDeleted, DeletedPayload{ID: id})
}

func (n *HubNotifier) emit(eventType string, payload any) {
	evt, err := NewEvent(eventType, payload)
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}
