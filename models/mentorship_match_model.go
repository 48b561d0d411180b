package models

import (
	"time"

	"github.com/google/uuid"
)

// MentorshipMatch is the durable record of an accepted connection. The
// composite unique index keeps a pair from ever being matched twice.
type MentorshipMatch struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID         uuid.UUID `gorm:"not null;uniqueIndex:idx_mentorship_pair" json:"mentor_id"`
	MenteeID         uuid.UUID `gorm:"not null;uniqueIndex:idx_mentorship_pair" json:"mentee_id"`
	ConnectRequestID uuid.UUID `gorm:"not null" json:"connect_request_id"`

	Mentor User `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	Mentee User `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
