package models

import (
	"time"

	"github.com/google/uuid"
)

type MenteeProfile struct {
	UserID      uuid.UUID `gorm:"primary_key" json:"user_id"`
	School      string    `gorm:"size:255" json:"school"`
	Major       string    `gorm:"size:255" json:"major"`
	CareerGoals *string   `gorm:"type:text" json:"career_goals"`
	Skills      *string   `gorm:"type:text" json:"skills"`
	Bio         *string   `gorm:"type:text" json:"bio"`

	PreferredStartHour int `gorm:"not null;default:0" json:"preferred_start_hour"`
	PreferredEndHour   int `gorm:"not null;default:23" json:"preferred_end_hour"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
