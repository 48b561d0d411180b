package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MenteeID       uuid.UUID `gorm:"not null" json:"mentee_id"`
	MentorID       uuid.UUID `gorm:"not null" json:"mentor_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	CompletionDate time.Time `json:"completion_date"`
	CertificateURL string    `gorm:"size:255" json:"certificate_url"`

	Mentee User `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`
	Mentor User `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`

	CreatedAt time.Time `json:"-"`
}
