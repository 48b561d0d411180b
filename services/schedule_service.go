package services

import (
	"fmt"
	"time"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/models"
)

const (
	DefaultMeetingDurationMinutes = 30
	MinMeetingDurationMinutes     = 15
	MaxMeetingDurationMinutes     = 240
)

// MeetingEndTime derives the end of a meeting from its start and a caller
// supplied duration in minutes. A zero duration means "use the default".
func MeetingEndTime(start time.Time, durationMinutes int) (time.Time, error) {
	if durationMinutes == 0 {
		durationMinutes = DefaultMeetingDurationMinutes
	}
	if durationMinutes < MinMeetingDurationMinutes || durationMinutes > MaxMeetingDurationMinutes {
		return time.Time{}, apperrors.InvalidInput(fmt.Sprintf(
			"meeting duration must be between %d and %d minutes",
			MinMeetingDurationMinutes, MaxMeetingDurationMinutes))
	}
	return start.Add(time.Duration(durationMinutes) * time.Minute), nil
}

// WithinPreferredHours reports whether the start time-of-day falls inside
// the window [startHour, endHour], both inclusive. The default window
// (0, 23) covers the whole day.
func WithinPreferredHours(t time.Time, startHour, endHour int) bool {
	hour := t.Hour()
	return hour >= startHour && hour <= endHour
}

// CheckMeetingWindow enforces both parties' preferred hours as a hard
// constraint: a start time outside either window rejects the proposal.
func CheckMeetingWindow(start time.Time, mentor models.MentorProfile, mentee models.MenteeProfile) error {
	if !WithinPreferredHours(start, mentor.PreferredStartHour, mentor.PreferredEndHour) {
		return apperrors.InvalidInput(fmt.Sprintf(
			"proposed time is outside the mentor's preferred hours (%02d:00-%02d:59)",
			mentor.PreferredStartHour, mentor.PreferredEndHour))
	}
	if !WithinPreferredHours(start, mentee.PreferredStartHour, mentee.PreferredEndHour) {
		return apperrors.InvalidInput(fmt.Sprintf(
			"proposed time is outside the mentee's preferred hours (%02d:00-%02d:59)",
			mentee.PreferredStartHour, mentee.PreferredEndHour))
	}
	return nil
}
