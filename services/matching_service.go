package services

import (
	"sort"
	"strings"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/models"
)

const MaxRankedMentors = 5

const (
	ratingWeight     = 7
	experienceWeight = 5
	skillWeight      = 3
	schoolBonus      = 4
)

type RankedMentor struct {
	Mentor models.MentorProfile `json:"mentor"`
	Score  float64              `json:"score"`
}

// ScoreMentor computes the affinity between a mentor and a mentee.
// Weights are fixed: rating x7, experience bucket x5, each overlapping
// skill x3, plus 4 for a shared school. The school match is
// case-insensitive and requires a non-empty school on the mentor's side,
// so two blank schools never earn the bonus. The experience bucket (1-5)
// is multiplied as-is, so "20+ years" (bucket 5) scores the same distance
// from bucket 4 as bucket 2 does from 1.
func ScoreMentor(mentor models.MentorProfile, mentee models.MenteeProfile) (float64, error) {
	if mentor.Skills == nil || mentee.Skills == nil {
		return 0, apperrors.InvalidInput("both profiles must declare a skill set")
	}

	score := mentor.AverageRating*ratingWeight + float64(mentor.YearsExperience)*experienceWeight

	menteeSkills := make(map[string]bool)
	for _, skill := range splitSkills(*mentee.Skills) {
		menteeSkills[skill] = true
	}
	for _, skill := range splitSkills(*mentor.Skills) {
		if menteeSkills[skill] {
			score += skillWeight
		}
	}

	if mentor.School != "" && strings.EqualFold(mentor.School, mentee.School) {
		score += schoolBonus
	}

	return score, nil
}

// RankTopMentors scores every candidate against the mentee and returns at
// most MaxRankedMentors results, highest score first. The sort is stable:
// candidates with equal scores keep their input order, so identical inputs
// always produce identical output.
func RankTopMentors(candidates []models.MentorProfile, mentee models.MenteeProfile) ([]RankedMentor, error) {
	ranked := make([]RankedMentor, 0, len(candidates))
	for _, mentor := range candidates {
		score, err := ScoreMentor(mentor, mentee)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedMentor{Mentor: mentor, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > MaxRankedMentors {
		ranked = ranked[:MaxRankedMentors]
	}
	return ranked, nil
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
