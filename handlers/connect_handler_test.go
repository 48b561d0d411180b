package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukundi-dev/mentor_bridge/models"
)

func newConnectApp(menteeID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Post("/connections", authAs(menteeID, "mentee"), CreateConnectRequest)
	return app
}

func postConnectRequest(t *testing.T, app *fiber.App, mentorID uuid.UUID) (int, map[string]string) {
	t.Helper()

	body, err := json.Marshal(fiber.Map{"mentor_id": mentorID.String()})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/connections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func expectApprovedMentor(mock sqlmock.Sqlmock, mentorID uuid.UUID) {
	mock.ExpectQuery(`SELECT .* FROM "mentor_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "status"}).
			AddRow(mentorID.String(), "approved"))
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "is_active"}).
			AddRow(mentorID.String(), "Mentor Person", "mentor@example.com", true))
}

func TestCreateConnectRequest_SecondRequestForSamePairConflicts(t *testing.T) {
	mock := newMockDB(t)
	mentorID := uuid.New()
	menteeID := uuid.New()

	expectApprovedMentor(mock, mentorID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "connect_requests" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id", "mentee_id", "status"}).
			AddRow(uuid.New().String(), mentorID.String(), menteeID.String(), models.RequestStatusPending))
	mock.ExpectRollback()

	status, payload := postConnectRequest(t, newConnectApp(menteeID), mentorID)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", payload["code"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// Two concurrent creates can both see no existing row, because FOR UPDATE
// locks nothing when the pair has no request yet. The loser's insert then
// hits the unique pair index, and the handler must surface that as the
// same CONFLICT a sequential duplicate gets.
func TestCreateConnectRequest_RacingInsertHitsUniquePairIndex(t *testing.T) {
	mock := newMockDB(t)
	mentorID := uuid.New()
	menteeID := uuid.New()

	expectApprovedMentor(mock, mentorID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "connect_requests" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "mentorship_matches"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "connect_requests"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_connect_request_pair"})
	mock.ExpectRollback()

	status, payload := postConnectRequest(t, newConnectApp(menteeID), mentorID)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", payload["code"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConnectRequest_ExistingMatchConflicts(t *testing.T) {
	mock := newMockDB(t)
	mentorID := uuid.New()
	menteeID := uuid.New()

	expectApprovedMentor(mock, mentorID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "connect_requests" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "mentorship_matches"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	status, payload := postConnectRequest(t, newConnectApp(menteeID), mentorID)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", payload["code"])
	require.NoError(t, mock.ExpectationsWereMet())
}
