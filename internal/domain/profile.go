package domain

import (
	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	MemberTypeID string    `json:"memberTypeId"`
	Avatar       string    `json:"avatar"`
	Sex          string    `json:"sex"`
	Birthday     int64     `json:"birthday"`
	Country      string    `json:"country"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
}
