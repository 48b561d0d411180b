// Package cache keeps short-lived copies of ranked mentor lists in Redis
// so repeated recommendation calls skip rescoring the whole mentor pool.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	config "github.com/mukundi-dev/mentor_bridge/configs"
	"github.com/mukundi-dev/mentor_bridge/services"
)

const (
	rankingTTL       = 5 * time.Minute
	generationKey    = "mentor_rankings:gen"
	rankingKeyFormat = "mentor_rankings:%d:%s"
)

var Rankings *RankingCache

type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// InitRankingCache wires the package-level cache from REDIS_URL. The cache
// is optional: without a URL every lookup is a miss and writes are no-ops.
func InitRankingCache() {
	redisURL := config.Config("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️ REDIS_URL not set, ranking cache disabled.")
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("🔥 Invalid REDIS_URL, ranking cache disabled: %v", err)
		return
	}

	Rankings = NewRankingCache(redis.NewClient(opts), rankingTTL)
	log.Println("✅ Ranking cache connected.")
}

func NewRankingCache(client *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{client: client, ttl: ttl}
}

// Get returns the cached ranking for a mentee, if a fresh one exists.
func (c *RankingCache) Get(ctx context.Context, menteeID uuid.UUID) ([]services.RankedMentor, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, c.key(ctx, menteeID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Ranking cache read failed for mentee %s: %v", menteeID, err)
		}
		return nil, false
	}

	var ranked []services.RankedMentor
	if err := json.Unmarshal(payload, &ranked); err != nil {
		log.Printf("Ranking cache entry for mentee %s is corrupt: %v", menteeID, err)
		return nil, false
	}
	return ranked, true
}

// Set stores a freshly computed ranking for a mentee.
func (c *RankingCache) Set(ctx context.Context, menteeID uuid.UUID, ranked []services.RankedMentor) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(ranked)
	if err != nil {
		log.Printf("Failed to marshal ranking for mentee %s: %v", menteeID, err)
		return
	}
	if err := c.client.Set(ctx, c.key(ctx, menteeID), payload, c.ttl).Err(); err != nil {
		log.Printf("Ranking cache write failed for mentee %s: %v", menteeID, err)
	}
}

// Invalidate drops every cached ranking. Mentor data (ratings, profile
// edits, approvals) feeds all rankings, so any mentor-side change bumps the
// generation counter and orphans the old keys until their TTL expires.
func (c *RankingCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		log.Printf("Ranking cache invalidation failed: %v", err)
	}
}

func (c *RankingCache) key(ctx context.Context, menteeID uuid.UUID) string {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		log.Printf("Ranking cache generation read failed: %v", err)
	}
	return fmt.Sprintf(rankingKeyFormat, gen, menteeID)
}
