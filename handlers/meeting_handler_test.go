package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeMeeting_WithoutAcceptedConnectionIsUnauthorized(t *testing.T) {
	mock := newMockDB(t)
	mentorID := uuid.New()
	menteeID := uuid.New()

	// no MentorshipMatch row for the pair
	mock.ExpectQuery(`SELECT .* FROM "mentorship_matches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	app := fiber.New()
	app.Post("/meetings", authAs(menteeID, "mentee"), ProposeMeeting)

	body, err := json.Marshal(fiber.Map{
		"mentor_id":      mentorID.String(),
		"mentee_id":      menteeID.String(),
		"scheduled_time": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"topic":          "Career planning session",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/meetings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "UNAUTHORIZED", payload["code"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProposeMeeting_NonPartyCallerIsUnauthorized(t *testing.T) {
	newMockDB(t)
	outsider := uuid.New()

	app := fiber.New()
	app.Post("/meetings", authAs(outsider, "mentee"), ProposeMeeting)

	body, err := json.Marshal(fiber.Map{
		"mentor_id":      uuid.New().String(),
		"mentee_id":      uuid.New().String(),
		"scheduled_time": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"topic":          "Career planning session",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/meetings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
