package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
)

// ConnectRequest is a mentee's proposal to start a mentorship. Declined
// requests are deleted outright, so every persisted row is an active
// (pending or accepted) request, which lets the composite unique index
// enforce one active request per pair at the database.
type ConnectRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID uuid.UUID `gorm:"not null;uniqueIndex:idx_connect_request_pair" json:"mentor_id"`
	MenteeID uuid.UUID `gorm:"not null;index;uniqueIndex:idx_connect_request_pair" json:"mentee_id"`
	Status   string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Message  *string   `gorm:"type:text" json:"message"`

	Mentor User `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	Mentee User `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
