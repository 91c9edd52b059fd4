package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/beka-birhanu/labyrinth-api/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeChallengeRepo struct {
	challenges map[uuid.UUID]*dmn.Challenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[uuid.UUID]*dmn.Challenge)}
}

func (r *fakeChallengeRepo) Save(_ context.Context, challenge *dmn.Challenge) error {
	r.challenges[challenge.ID] = challenge
	return nil
}

func (r *fakeChallengeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Challenge, error) {
	challenge, ok := r.challenges[id]
	if !ok {
		return nil, errors.New("challenge not found")
	}
	return challenge, nil
}

type fakeScoreBoard struct {
	boards map[string]map[string]float64
}

func newFakeScoreBoard() *fakeScoreBoard {
	return &fakeScoreBoard{boards: make(map[string]map[string]float64)}
}

func (sb *fakeScoreBoard) Submit(_ context.Context, boardKey, member string, score float64) error {
	board, ok := sb.boards[boardKey]
	if !ok {
		board = make(map[string]float64)
		sb.boards[boardKey] = board
	}
	if existing, ok := board[member]; !ok || score > existing {
		board[member] = score
	}
	return nil
}

func (sb *fakeScoreBoard) Top(_ context.Context, boardKey string, amount int64) ([]i.ScoreEntry, error) {
	var entries []i.ScoreEntry
	for member, score := range sb.boards[boardKey] {
		entries = append(entries, i.ScoreEntry{Member: member, Score: score})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Score > entries[b].Score })
	if int64(len(entries)) > amount {
		entries = entries[:amount]
	}
	return entries, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newChallengeService(t *testing.T) (*ChallengeService, *fakeChallengeRepo, *fakeScoreBoard) {
	t.Helper()
	repo := newFakeChallengeRepo()
	board := newFakeScoreBoard()
	svc, err := NewChallengeService(ChallengeServiceConfig{
		Repo:       repo,
		ScoreBoard: board,
		Logger:     nopLogger{},
	})
	assert.NoError(t, err)
	return svc, repo, board
}

func TestNewChallengeService(t *testing.T) {
	_, err := NewChallengeService(ChallengeServiceConfig{})
	assert.Error(t, err)
}

func TestChallengeServiceCreate(t *testing.T) {
	t.Run("persists a solvable challenge", func(t *testing.T) {
		svc, repo, _ := newChallengeService(t)

		challenge, err := svc.Create(context.Background(), i.ChallengeRequest{Width: 15, Height: 15})
		assert.NoError(t, err)
		assert.Greater(t, challenge.OptimalLength, 0)
		assert.Contains(t, repo.challenges, challenge.ID)

		path, err := solver.BFS(challenge.Artifact)
		assert.NoError(t, err)
		assert.Equal(t, challenge.OptimalLength, len(path)-1)
	})

	t.Run("applies default dimensions", func(t *testing.T) {
		svc, _, _ := newChallengeService(t)

		challenge, err := svc.Create(context.Background(), i.ChallengeRequest{})
		assert.NoError(t, err)
		assert.Equal(t, 21, challenge.Artifact.Width)
		assert.Equal(t, 21, challenge.Artifact.Height)
	})

	t.Run("rejects undersized dimensions", func(t *testing.T) {
		svc, _, _ := newChallengeService(t)

		_, err := svc.Create(context.Background(), i.ChallengeRequest{Width: 3, Height: 3})
		assert.Error(t, err)
	})

	t.Run("generates adversarial challenges", func(t *testing.T) {
		svc, _, _ := newChallengeService(t)

		challenge, err := svc.Create(context.Background(), i.ChallengeRequest{Width: 25, Height: 25, Adversarial: true})
		assert.NoError(t, err)
		assert.True(t, challenge.Adversarial)

		_, err = solver.BFS(challenge.Artifact)
		assert.NoError(t, err)
	})
}

func TestChallengeServiceSubmit(t *testing.T) {
	svc, _, board := newChallengeService(t)
	ctx := context.Background()

	challenge, err := svc.Create(ctx, i.ChallengeRequest{Width: 15, Height: 15})
	assert.NoError(t, err)

	optimal, err := solver.BFS(challenge.Artifact)
	assert.NoError(t, err)

	t.Run("scores an optimal solution at 1000", func(t *testing.T) {
		score, err := svc.Submit(ctx, challenge.ID, "botwright", optimal)
		assert.NoError(t, err)
		assert.InDelta(t, 1000.0, score, 0.001)
		assert.Len(t, board.boards, 1)
	})

	t.Run("rejects an invalid solution", func(t *testing.T) {
		_, err := svc.Submit(ctx, challenge.ID, "botwright", [][2]int{challenge.Artifact.Start})
		assert.ErrorIs(t, err, dmn.ErrInvalidSolution)
	})

	t.Run("fails for an unknown challenge", func(t *testing.T) {
		_, err := svc.Submit(ctx, uuid.New(), "botwright", optimal)
		assert.Error(t, err)
	})
}

func TestChallengeServiceLeaderboard(t *testing.T) {
	svc, _, _ := newChallengeService(t)
	ctx := context.Background()

	challenge, err := svc.Create(ctx, i.ChallengeRequest{Width: 15, Height: 15})
	assert.NoError(t, err)

	optimal, err := solver.BFS(challenge.Artifact)
	assert.NoError(t, err)

	// A slower route: the optimal path with one backtrack at the start.
	detour := append([][2]int{optimal[0], optimal[1]}, optimal...)

	_, err = svc.Submit(ctx, challenge.ID, "fast", optimal)
	assert.NoError(t, err)
	_, err = svc.Submit(ctx, challenge.ID, "slow", detour)
	assert.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, challenge.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "fast", entries[0].Member)
	assert.Greater(t, entries[0].Score, entries[1].Score)
}
