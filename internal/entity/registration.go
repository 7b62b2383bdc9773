package entity

import (
	"time"
)

type Registration struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	EventID          int64     `json:"eventId"`
	RegistrationDate time.Time `json:"registrationDate"`
	HasPaid          bool      `json:"hasPaid"`
	HasAttended      bool      `json:"hasAttended"`
}
