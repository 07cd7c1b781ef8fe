package ghtoken

import (
	"time"

	"github.com/jonboulle/clockwork"
)

var defaultClock = clockwork.NewRealClock()

// HasExpired returns true if the current time is at or past expiresAt, which must
// be an RFC 3339 timestamp as returned by the Github API.
func HasExpired(expiresAt string) (bool, error) {
	return hasExpired(defaultClock, expiresAt)
}

func hasExpired(clock clockwork.Clock, expiresAt string) (bool, error) {
	expires, err := ParseExpiresAt(expiresAt)
	if err != nil {
		return false, err
	}
	return !clock.Now().Before(expires), nil
}

// ParseExpiresAt parses an RFC 3339 expiry timestamp.
func ParseExpiresAt(expiresAt string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return time.Time{}, &InvalidTimestampError{Value: expiresAt, Err: err}
	}
	return t, nil
}
