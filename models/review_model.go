package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"not null;unique" json:"meeting_id"`
	MenteeID  uuid.UUID `gorm:"not null" json:"mentee_id"`
	MentorID  uuid.UUID `gorm:"not null" json:"mentor_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`

	Meeting Meeting `gorm:"foreignkey:MeetingID" json:"meeting,omitempty"`
	Mentee  User    `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`
	Mentor  User    `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
