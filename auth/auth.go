// Package auth is the single-user login gate in front of the CLI: one
// configured credential pair, checked once per session.
package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrInvalidCredentials reports a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid username or password")

// User is a logged-in session user.
type User struct {
	Username string
}

// Gate checks credentials against one configured user.
type Gate struct {
	username string
	password string
}

// NewGate returns a gate for the configured credential pair.
func NewGate(username, password string) *Gate {
	return &Gate{username: username, password: password}
}

// Login validates the credentials and returns the session user.
func (g *Gate) Login(username, password string) (*User, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	log.Info().Str("user", username).Msg("login successful")
	return &User{Username: username}, nil
}

// Logout ends the session.
func (g *Gate) Logout(u *User) {
	log.Info().Str("user", u.Username).Msg("logged out")
}
