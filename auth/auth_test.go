package auth

import (
	"errors"
	"testing"
)

func TestLogin(t *testing.T) {
	gate := NewGate("admin", "secret")

	user, err := gate.Login("admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("username = %q", user.Username)
	}
	gate.Logout(user)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gate := NewGate("admin", "secret")

	cases := []struct {
		name     string
		user     string
		password string
	}{
		{"wrong password", "admin", "guess"},
		{"wrong username", "root", "secret"},
		{"both wrong", "root", "guess"},
		{"empty", "", ""},
		{"swapped", "secret", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := gate.Login(tc.user, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
			if user != nil {
				t.Errorf("user = %+v, want nil", user)
			}
		})
	}
}
