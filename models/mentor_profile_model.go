package models

import (
	"time"

	"github.com/google/uuid"
)

type MentorProfile struct {
	UserID   uuid.UUID `gorm:"primary_key" json:"user_id"`
	School   string    `gorm:"size:255" json:"school"`
	Industry string    `gorm:"size:255" json:"industry"`
	Company  string    `gorm:"size:255" json:"company"`
	JobTitle string    `gorm:"size:255" json:"job_title"`

	// Experience bucket 1-5, where 5 means 20+ years. The scoring formula
	// multiplies the raw bucket, so bucket 5 does not scale like a real
	// year count.
	YearsExperience int     `gorm:"not null;default:1" json:"years_experience"`
	Skills          *string `gorm:"type:text" json:"skills"`
	Bio             *string `gorm:"type:text" json:"bio"`
	Status          string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	PreferredStartHour int `gorm:"not null;default:0" json:"preferred_start_hour"`
	PreferredEndHour   int `gorm:"not null;default:23" json:"preferred_end_hour"`

	TotalRating   float64 `gorm:"default:0" json:"-"`
	RatingCount   int     `gorm:"default:0" json:"rating_count"`
	AverageRating float64 `gorm:"default:0" json:"average_rating"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
