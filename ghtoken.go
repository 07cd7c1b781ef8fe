// Package ghtoken issues and revokes short-lived installation access tokens for Github Apps.
//
// A token is created by authenticating as the App (a JWT signed with its private key), resolving
// the installation for the target owner and requesting an access token for that installation,
// optionally narrowed to a set of repositories and permissions:
//
//	token, err := ghtoken.Create(ctx, ghtoken.AppCredentials{AppID: "123456", PrivateKey: key}, &ghtoken.TokenRequest{
//		Owner:        "telia-oss",
//		Repositories: []string{"ghtoken"},
//		Permissions:  ghtoken.Permissions{"issues": "write"},
//	})
//
// Tokens that have not expired yet can be revoked with Revoke, or collected in a Collection and
// revoked in bulk when the caller is done with them.
package ghtoken

import (
	"go.uber.org/zap"
)

// AppCredentials identify the Github App itself (not a specific installation).
type AppCredentials struct {
	// AppID is the App ID (also known as the integration ID).
	AppID string

	// PrivateKey is the PEM encoded private key of the App.
	PrivateKey string
}

// Permissions maps a permission name (e.g. "contents") to an access level (e.g. "read").
type Permissions map[string]string

// TokenRequest describes the scope of the installation token to create.
type TokenRequest struct {
	// Owner is the login of the user or organization where the App is installed.
	Owner string `json:"owner"`

	// Organization looks up the installation using the organization endpoint.
	Organization bool `json:"organization,omitempty"`

	// Repositories restricts the token to the named repositories.
	Repositories []string `json:"repositories,omitempty"`

	// Permissions restricts the token to the given permissions.
	Permissions Permissions `json:"permissions,omitempty"`
}

// Token is an installation access token returned by the Github API.
type Token struct {
	// Token is the secret value and must never be logged.
	Token string `json:"-"`

	// ExpiresAt is the RFC 3339 timestamp at which the token expires.
	ExpiresAt string `json:"expires_at"`

	// InstallationID is the installation the token was issued for.
	InstallationID int64 `json:"installation_id"`
}

// Logger receives progress messages from a Collection.
type Logger interface {
	Info(message string)
}

// NewZapLogger returns a Logger that writes info messages to a zap.Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger}
}

type zapLogger struct {
	logger *zap.Logger
}

// Info implements Logger.
func (l *zapLogger) Info(message string) {
	l.logger.Info(message)
}

// NopLogger is a Logger that discards all messages.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Info(string) {}
