// Package identity exposes solver-account registration, login and the
// bearer-token authorization middleware.
package identity

// AuthRequest carries registration and login credentials.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the successful login payload.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Token    string `json:"token"`
}
