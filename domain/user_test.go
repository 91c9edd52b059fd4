package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const strongPassword = "correct-horse-battery-staple-42"

func TestNewUser(t *testing.T) {
	t.Run("creates a user with default rating", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner_7",
			PlainPassword: strongPassword,
		})
		assert.NoError(t, err)
		assert.Equal(t, "maze_runner_7", user.Username)
		assert.Equal(t, defaultRating, user.Rating)
		assert.NotEqual(t, strongPassword, user.PasswordHash)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner_7",
			PlainPassword: "password",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rejects malformed usernames", func(t *testing.T) {
		for _, username := range []string{"ab", "has spaces", "way_too_long_username_for_the_rules", "bad!chars"} {
			_, err := NewUser(UserConfig{
				ID:            uuid.New(),
				Username:      username,
				PlainPassword: strongPassword,
			})
			assert.Error(t, err, "username %q should be rejected", username)
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser(UserConfig{
		ID:            uuid.New(),
		Username:      "checker",
		PlainPassword: strongPassword,
	})
	assert.NoError(t, err)

	assert.True(t, user.VerifyPassword(strongPassword))
	assert.False(t, user.VerifyPassword("wrong-password"))
}
