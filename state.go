package ghtoken

import (
	"context"
)

// StateBackend is implemented by things that know how to store ghtoken.State.
type StateBackend interface {
	// Load state from the backend. If no state exists it should be created.
	Load(ctx context.Context, path string) (*State, error)

	// Save a state to the backend.
	Save(ctx context.Context, path string, state *State) error
}

// NewState returns a new ghtoken.State.
func NewState() *State {
	return &State{}
}

// State keeps track of the tokens that have been issued and where they were stored,
// so they can be rotated before they expire and revoked during cleanup.
type State struct {
	Tokens []*Record `json:"tokens,omitempty"`
}

// Record describes an issued token. The token value itself lives in the secret store.
type Record struct {
	Name           string `json:"name"`
	Owner          string `json:"owner"`
	InstallationID int64  `json:"installation_id"`
	ExpiresAt      string `json:"expires_at"`
	Path           string `json:"path"`
}

// AddRecord adds a record to the state, replacing any existing record with the same name.
func (s *State) AddRecord(record *Record) {
	for i, r := range s.Tokens {
		if r.Name == record.Name {
			s.Tokens[i] = record
			return
		}
	}
	s.Tokens = append(s.Tokens, record)
}

// GetRecord returns the record with the given name.
func (s *State) GetRecord(name string) (*Record, bool) {
	for _, r := range s.Tokens {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// RemoveRecord from the state.
func (s *State) RemoveRecord(name string) {
	for i, r := range s.Tokens {
		if r.Name == name {
			s.Tokens = append(s.Tokens[:i], s.Tokens[i+1:]...)
			break
		}
	}
}
