package entities

import "time"

type ClientID string

// Client is the contact record created for every quote submission.
// It is never deduplicated by email nor edited afterwards.
type Client struct {
	ID           ClientID  `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registered_at"`
}
