package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/models"
)

func assertInvalidTransition(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
}

func TestConnectRequestTransitions(t *testing.T) {
	require.NoError(t, CanAcceptRequest(models.RequestStatusPending))
	require.NoError(t, CanDeclineRequest(models.RequestStatusPending))

	// accept is terminal: no second accept, no decline-after-accept
	assertInvalidTransition(t, CanAcceptRequest(models.RequestStatusAccepted))
	assertInvalidTransition(t, CanDeclineRequest(models.RequestStatusAccepted))
}

func TestMeetingTransitions(t *testing.T) {
	require.NoError(t, CanRespondToMeeting(models.MeetingStatusPending))

	assertInvalidTransition(t, CanRespondToMeeting(models.MeetingStatusAccepted))
	assertInvalidTransition(t, CanRespondToMeeting(models.MeetingStatusRejected))
}

func TestIsMeetingDecision(t *testing.T) {
	assert.True(t, IsMeetingDecision(models.MeetingStatusAccepted))
	assert.True(t, IsMeetingDecision(models.MeetingStatusRejected))
	assert.False(t, IsMeetingDecision(models.MeetingStatusPending))
	assert.False(t, IsMeetingDecision("cancelled"))
}
