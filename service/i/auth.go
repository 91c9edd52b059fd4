package i

import (
	dmn "github.com/beka-birhanu/labyrinth-api/domain"
)

// Authenticator handles solver-account registration and sign-in.
type Authenticator interface {
	// Register creates an account from a username and plain password.
	Register(username, password string) error

	// SignIn verifies credentials and returns the account plus a signed
	// access token.
	SignIn(username, password string) (*dmn.User, string, error)
}
