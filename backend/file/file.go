// Package file implements a ghtoken.StateBackend that writes to a file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/telia-oss/ghtoken"
)

// New returns a file ghtoken.StateBackend.
func New() ghtoken.StateBackend {
	return &fileStateBackend{}
}

type fileStateBackend struct{}

// Load implements ghtoken.StateBackend.
func (b *fileStateBackend) Load(_ context.Context, file string) (*ghtoken.State, error) {
	if err := b.createFileIfNotExists(file); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	state := ghtoken.NewState()
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return state, nil
}

// Save implements ghtoken.StateBackend.
func (b *fileStateBackend) Save(_ context.Context, file string, state *ghtoken.State) error {
	o, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	// The state does not contain token values, but it does reveal which tokens exist.
	return os.WriteFile(file, o, 0o600)
}

func (b *fileStateBackend) createFileIfNotExists(file string) error {
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("state file: %w", err)
		}
		return f.Close()
	}
	return err
}
