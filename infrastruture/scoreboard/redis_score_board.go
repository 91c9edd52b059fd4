// Package scoreboard implements the per-challenge leaderboard on Redis
// sorted sets, with redsync locks serializing submissions for a board.
package scoreboard

import (
	"context"
	"time"

	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisScoreBoard manages challenge leaderboards in Redis with TTL support.
type RedisScoreBoard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisScoreBoard initializes a RedisScoreBoard with the provided Redis client and TTL.
func NewRedisScoreBoard(client *redis.Client, ttlSeconds int) (*RedisScoreBoard, error) {
	board := &RedisScoreBoard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Submit records a member's score on a board, keeping only the member's
// best. The lock serializes the read-compare-write against concurrent
// submissions for the same board.
func (rsb *RedisScoreBoard) Submit(ctx context.Context, boardKey, member string, score float64) error {
	mutex := rsb.locker.NewMutex(boardKey + ":submit_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// GT keeps the highest score a member has ever posted.
	if err := rsb.client.ZAddGT(ctx, boardKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rsb.client.TTL(ctx, boardKey).Result()
	if err == nil && ttl == -1 {
		_ = rsb.client.Expire(ctx, boardKey, rsb.ttl).Err()
	}

	return nil
}

// Top returns up to amount members with the highest scores, best first.
func (rsb *RedisScoreBoard) Top(ctx context.Context, boardKey string, amount int64) ([]i.ScoreEntry, error) {
	if amount <= 0 {
		return nil, nil
	}

	results, err := rsb.client.ZRevRangeWithScores(ctx, boardKey, 0, amount-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.ScoreEntry, 0, len(results))
	for _, z := range results {
		member, _ := z.Member.(string)
		entries = append(entries, i.ScoreEntry{Member: member, Score: z.Score})
	}
	return entries, nil
}
