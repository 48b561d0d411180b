package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/models"
)

func TestMeetingEndTime(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	end, err := MeetingEndTime(start, 0)
	require.NoError(t, err)
	assert.Equal(t, start.Add(30*time.Minute), end)
	assert.True(t, end.After(start))

	end, err = MeetingEndTime(start, 90)
	require.NoError(t, err)
	assert.Equal(t, start.Add(90*time.Minute), end)

	for _, bad := range []int{-30, 5, 14, 241} {
		_, err := MeetingEndTime(start, bad)
		require.Error(t, err, "duration %d should be rejected", bad)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
	}
}

func TestWithinPreferredHours(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 10, hour, 30, 0, 0, time.UTC)
	}

	// full-day default window admits everything
	assert.True(t, WithinPreferredHours(at(0), 0, 23))
	assert.True(t, WithinPreferredHours(at(23), 0, 23))

	// bounds are inclusive
	assert.True(t, WithinPreferredHours(at(9), 9, 17))
	assert.True(t, WithinPreferredHours(at(17), 9, 17))
	assert.False(t, WithinPreferredHours(at(8), 9, 17))
	assert.False(t, WithinPreferredHours(at(18), 9, 17))
}

func TestCheckMeetingWindow(t *testing.T) {
	mentor := models.MentorProfile{PreferredStartHour: 9, PreferredEndHour: 17}
	mentee := models.MenteeProfile{PreferredStartHour: 12, PreferredEndHour: 20}

	inside := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	require.NoError(t, CheckMeetingWindow(inside, mentor, mentee))

	mentorOnly := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	err := CheckMeetingWindow(mentorOnly, mentor, mentee)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)

	menteeOnly := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	require.Error(t, CheckMeetingWindow(menteeOnly, mentor, mentee))
}
