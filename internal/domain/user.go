package domain

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	// SubscribedToUserIDs lists the users this user follows, in the order
	// the subscriptions were made. Duplicate entries are possible; a single
	// unsubscribe removes one occurrence.
	SubscribedToUserIDs []uuid.UUID `json:"subscribedToUserIds"`
}

// IsSubscribedTo reports whether the user follows the given user.
func (u *User) IsSubscribedTo(id uuid.UUID) bool {
	for _, s := range u.SubscribedToUserIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Unsubscribe removes the first occurrence of id from the subscription list
// and reports whether an entry was removed.
func (u *User) Unsubscribe(id uuid.UUID) bool {
	for i, s := range u.SubscribedToUserIDs {
		if s == id {
			u.SubscribedToUserIDs = append(u.SubscribedToUserIDs[:i], u.SubscribedToUserIDs[i+1:]...)
			return true
		}
	}
	return false
}
