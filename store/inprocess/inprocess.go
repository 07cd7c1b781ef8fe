// Package inprocess keeps installation tokens in memory. Tokens are lost when the process exits,
// so it is only useful for tests and for one-off runs where the caller reads the token back
// before exiting.
package inprocess

import (
	"sync"

	"github.com/telia-oss/ghtoken"
)

const defaultPathTemplate = "{{ .Namespace }}.{{ .Name }}"

// New returns an empty in-memory token store.
func New(options ...option) ghtoken.SecretStore {
	s := &store{
		tokens:       make(map[string]string),
		pathTemplate: defaultPathTemplate,
	}
	for _, optionFunc := range options {
		optionFunc(s)
	}
	return s
}

type option func(*store)

// WithPathTemplate sets the template used to build the path of a stored token.
func WithPathTemplate(t string) option {
	return func(s *store) {
		s.pathTemplate = t
	}
}

// store maps a token path to the token value. It is safe for concurrent use.
type store struct {
	mu           sync.RWMutex
	tokens       map[string]string
	pathTemplate string
}

func (s *store) Type() ghtoken.StoreType {
	return ghtoken.Inprocess
}

// Write stores the token, replacing any token previously stored at the same path.
func (s *store) Write(namespace string, secret *ghtoken.Secret) (string, error) {
	path, err := ghtoken.BuildSecretPath(s.pathTemplate, namespace, secret.Name)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[path] = secret.Value
	return path, nil
}

// Read never fails; a token that was never written (or was deleted) is reported as not found.
func (s *store) Read(path string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, found := s.tokens[path]
	return token, found, nil
}

func (s *store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, path)
	return nil
}
