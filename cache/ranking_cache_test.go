package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukundi-dev/mentor_bridge/models"
	"github.com/mukundi-dev/mentor_bridge/services"
)

func newTestCache(t *testing.T) *RankingCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRankingCache(client, time.Minute)
}

func sampleRanking(score float64) []services.RankedMentor {
	skills := "go, sql"
	return []services.RankedMentor{
		{
			Mentor: models.MentorProfile{
				UserID:          uuid.New(),
				School:          "MIT",
				YearsExperience: 3,
				Skills:          &skills,
			},
			Score: score,
		},
	}
}

func TestRankingCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	menteeID := uuid.New()

	_, ok := c.Get(ctx, menteeID)
	assert.False(t, ok)

	ranked := sampleRanking(50)
	c.Set(ctx, menteeID, ranked)

	got, ok := c.Get(ctx, menteeID)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Score)
	assert.Equal(t, ranked[0].Mentor.UserID, got[0].Mentor.UserID)
}

func TestRankingCache_InvalidateDropsAllEntries(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	first := uuid.New()
	second := uuid.New()
	c.Set(ctx, first, sampleRanking(10))
	c.Set(ctx, second, sampleRanking(20))

	c.Invalidate(ctx)

	_, ok := c.Get(ctx, first)
	assert.False(t, ok)
	_, ok = c.Get(ctx, second)
	assert.False(t, ok)

	// writes after invalidation land in the new generation
	c.Set(ctx, first, sampleRanking(30))
	got, ok := c.Get(ctx, first)
	require.True(t, ok)
	assert.Equal(t, 30.0, got[0].Score)
}

func TestRankingCache_NilCacheIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *RankingCache

	_, ok := c.Get(ctx, uuid.New())
	assert.False(t, ok)
	c.Set(ctx, uuid.New(), sampleRanking(1))
	c.Invalidate(ctx)
}
