package service

import (
	"errors"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users map[string]*dmn.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*dmn.User)}
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

type fakeTokenizer struct{}

func (fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	return "token-for-" + claims["username"].(string), nil
}

func (fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

func TestAuthService(t *testing.T) {
	repo := newFakeUserRepo()
	svc, err := NewAuthService(repo, fakeTokenizer{})
	assert.NoError(t, err)

	password := "correct-horse-battery-staple-42"

	t.Run("registers a valid user", func(t *testing.T) {
		assert.NoError(t, svc.Register("maze_runner", password))
		assert.Contains(t, repo.users, "maze_runner")
	})

	t.Run("rejects weak credentials", func(t *testing.T) {
		assert.ErrorIs(t, svc.Register("another_user", "password"), dmn.ErrWeakPassword)
	})

	t.Run("signs in with correct credentials", func(t *testing.T) {
		user, token, err := svc.SignIn("maze_runner", password)
		assert.NoError(t, err)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, "token-for-maze_runner", token)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, _, err := svc.SignIn("maze_runner", "wrong-password")
		assert.Error(t, err)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		_, _, err := svc.SignIn("nobody", password)
		assert.Error(t, err)
	})
}

func TestNewAuthServiceValidation(t *testing.T) {
	_, err := NewAuthService(nil, nil)
	assert.Error(t, err)
}
