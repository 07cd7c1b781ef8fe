package ghtoken

import (
	"fmt"
)

// InstallationNotFoundError is returned when the App is not installed for the owner.
type InstallationNotFoundError struct {
	Owner string
	Err   error
}

func (e *InstallationNotFoundError) Error() string {
	return fmt.Sprintf("installation not found for user/org %q: %s", e.Owner, e.Err)
}

func (e *InstallationNotFoundError) Unwrap() error { return e.Err }

// TokenCreationError is returned when Github rejects the request for an installation token,
// e.g. when asking for a repository or permission that the installation does not grant.
type TokenCreationError struct {
	InstallationID int64
	Err            error
}

func (e *TokenCreationError) Error() string {
	return fmt.Sprintf("create token for installation %d: %s", e.InstallationID, e.Err)
}

func (e *TokenCreationError) Unwrap() error { return e.Err }

// RevocationError is returned when Github rejects the revocation of a token
// (e.g. because it has already expired or been revoked).
type RevocationError struct {
	Err error
}

func (e *RevocationError) Error() string {
	return fmt.Sprintf("revoke token: %s", e.Err)
}

func (e *RevocationError) Unwrap() error { return e.Err }

// InvalidTimestampError is returned when an expiry timestamp cannot be parsed.
type InvalidTimestampError struct {
	Value string
	Err   error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Value, e.Err)
}

func (e *InvalidTimestampError) Unwrap() error { return e.Err }
