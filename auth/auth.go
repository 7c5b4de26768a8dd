// Package auth manages the marketplace session: the bearer token lives in the
// system keyring, the profile of the logged-in account is cached on disk.
package auth

import (
	"github.com/codeit-cli/codeit/api"
	"github.com/zalando/go-keyring"
)

const (
	service = "codeit-cli"
	user    = "session-token"
)

// SetToken persists the session token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// Token retrieves the session token from the system keyring.
func Token() (string, error) {
	return keyring.Get(service, user)
}

// DeleteToken removes the session token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(service, user)
}

// Provider adapts the keyring to the API client's token lookup.
func Provider() api.TokenProvider {
	return func() (string, bool) {
		token, err := Token()
		return token, err == nil && token != ""
	}
}

// LoggedIn reports whether a session token is present.
func LoggedIn() bool {
	_, ok := Provider()()
	return ok
}
