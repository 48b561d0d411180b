package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/models"
)

func strPtr(s string) *string { return &s }

func makeMentor(rating float64, experience int, skills, school string) models.MentorProfile {
	return models.MentorProfile{
		AverageRating:   rating,
		YearsExperience: experience,
		Skills:          strPtr(skills),
		School:          school,
	}
}

func makeMentee(skills, school string) models.MenteeProfile {
	return models.MenteeProfile{
		Skills: strPtr(skills),
		School: school,
	}
}

func TestScoreMentor(t *testing.T) {
	tests := []struct {
		name     string
		mentor   models.MentorProfile
		mentee   models.MenteeProfile
		expected float64
	}{
		{
			name:     "rating experience one skill and school match",
			mentor:   makeMentor(4.0, 3, "Python, SQL", "MIT"),
			mentee:   makeMentee("python, leadership", "mit"),
			expected: 50, // 4*7 + 3*5 + 1*3 + 4
		},
		{
			name:     "no overlap anywhere",
			mentor:   makeMentor(0, 1, "Rust", "Stanford"),
			mentee:   makeMentee("marketing", "MIT"),
			expected: 5,
		},
		{
			name:     "empty skill sets score zero overlap",
			mentor:   makeMentor(2.0, 2, "", ""),
			mentee:   makeMentee("", "anywhere"),
			expected: 24, // 2*7 + 2*5; empty schools earn no bonus
		},
		{
			name:     "skill matching is case insensitive and trimmed",
			mentor:   makeMentor(0, 1, " GO ,  docker", "x"),
			mentee:   makeMentee("go,DOCKER", "y"),
			expected: 11, // 1*5 + 2*3
		},
		{
			name:     "duplicate mentor skills count per occurrence",
			mentor:   makeMentor(0, 1, "go, go", "x"),
			mentee:   makeMentee("go", "y"),
			expected: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ScoreMentor(tt.mentor, tt.mentee)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
			assert.GreaterOrEqual(t, score, 0.0)
		})
	}
}

func TestScoreMentor_MissingSkills(t *testing.T) {
	mentor := makeMentor(4.0, 3, "go", "MIT")
	mentor.Skills = nil
	_, err := ScoreMentor(mentor, makeMentee("go", "MIT"))
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)

	mentee := makeMentee("go", "MIT")
	mentee.Skills = nil
	_, err = ScoreMentor(makeMentor(4.0, 3, "go", "MIT"), mentee)
	require.Error(t, err)
}

func TestRankTopMentors_OrderAndTruncation(t *testing.T) {
	mentee := makeMentee("go, sql", "MIT")

	candidates := []models.MentorProfile{
		makeMentor(1.0, 1, "none", "x"),       // 12
		makeMentor(5.0, 5, "go, sql", "MIT"),  // 70
		makeMentor(3.0, 2, "go", "x"),         // 34
		makeMentor(4.0, 4, "sql", "MIT"),      // 55
		makeMentor(2.0, 1, "go, sql", "x"),    // 25
		makeMentor(1.0, 2, "none", "nowhere"), // 17
		makeMentor(0.5, 1, "none", "x"),       // 8.5
	}

	ranked, err := RankTopMentors(candidates, mentee)
	require.NoError(t, err)
	require.Len(t, ranked, MaxRankedMentors)

	assert.Equal(t, 70.0, ranked[0].Score)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	// the two lowest scores never make the cut
	for _, r := range ranked {
		assert.Greater(t, r.Score, 12.0)
	}
}

func TestRankTopMentors_StableTieBreak(t *testing.T) {
	mentee := makeMentee("go", "nowhere")

	first := makeMentor(2.0, 1, "none", "a")
	second := makeMentor(2.0, 1, "none", "b")
	third := makeMentor(2.0, 1, "none", "c")
	candidates := []models.MentorProfile{first, second, third}

	for i := 0; i < 10; i++ {
		ranked, err := RankTopMentors(candidates, mentee)
		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, "a", ranked[0].Mentor.School)
		assert.Equal(t, "b", ranked[1].Mentor.School)
		assert.Equal(t, "c", ranked[2].Mentor.School)
	}
}

func TestRankTopMentors_EmptyCandidates(t *testing.T) {
	ranked, err := RankTopMentors(nil, makeMentee("go", "MIT"))
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankTopMentors_BetterMentorRanksAbove(t *testing.T) {
	mentee := makeMentee("go, sql, docker", "MIT")

	weaker := makeMentor(3.0, 2, "go", "nowhere")
	stronger := makeMentor(4.5, 2, "go, sql", "MIT")

	ranked, err := RankTopMentors([]models.MentorProfile{weaker, stronger}, mentee)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "MIT", ranked[0].Mentor.School)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}
