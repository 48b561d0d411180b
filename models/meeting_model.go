package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MeetingStatusPending  = "pending"
	MeetingStatusAccepted = "accepted"
	MeetingStatusRejected = "rejected"
)

type Meeting struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID     uuid.UUID `gorm:"not null;index" json:"mentor_id"`
	MenteeID     uuid.UUID `gorm:"not null;index" json:"mentee_id"`
	ProposedByID uuid.UUID `gorm:"not null" json:"proposed_by_id"`

	ScheduledTime time.Time `gorm:"not null" json:"scheduled_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	Topic         string    `gorm:"size:255;not null" json:"topic"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	RoomCode    *string `gorm:"size:20;unique" json:"-"`
	MeetingLink *string `gorm:"size:255" json:"meeting_link"`

	Mentor User `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	Mentee User `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
