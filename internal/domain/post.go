package domain

import (
	"github.com/google/uuid"
)

type Post struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"userId"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}
