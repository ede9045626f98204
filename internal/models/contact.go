package models

import "time"

// RequestStatus tracks how far along a contact request is.
type RequestStatus string

const (
	StatusNew        RequestStatus = "new"
	StatusInProgress RequestStatus = "in-progress"
	StatusCompleted  RequestStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ContactRequest is an inbound inquiry submitted through the public
// contact form and worked by admins.
type ContactRequest struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Service   string        `json:"service"`
	Message   string        `json:"message"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
