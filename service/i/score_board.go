package i

import "context"

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
}

// ScoreBoard is the per-challenge leaderboard: best score wins, one
// entry per solver.
type ScoreBoard interface {
	// Submit records a score for a member, keeping the member's best.
	Submit(ctx context.Context, boardKey, member string, score float64) error

	// Top returns up to amount entries ordered by descending score.
	Top(ctx context.Context, boardKey string, amount int64) ([]ScoreEntry, error)
}
