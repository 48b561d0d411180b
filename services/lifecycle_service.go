package services

import (
	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/models"
)

// Transition rules for connect requests and meetings. Handlers call these
// inside the same transaction that locks the row, so the first concurrent
// transition wins and the loser sees INVALID_TRANSITION.

func CanAcceptRequest(status string) error {
	if status != models.RequestStatusPending {
		return apperrors.InvalidTransition("only a pending request can be accepted")
	}
	return nil
}

func CanDeclineRequest(status string) error {
	if status != models.RequestStatusPending {
		return apperrors.InvalidTransition("only a pending request can be declined")
	}
	return nil
}

func CanRespondToMeeting(status string) error {
	if status != models.MeetingStatusPending {
		return apperrors.InvalidTransition("meeting has already been resolved")
	}
	return nil
}

func IsMeetingDecision(decision string) bool {
	return decision == models.MeetingStatusAccepted || decision == models.MeetingStatusRejected
}
