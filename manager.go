package ghtoken

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/telia-oss/ghtoken/eventctx"
)

const tokenDescription = "Github App installation token managed by ghtoken."

// NewManager returns a new Manager which issues tokens for the configured App, and writes them to the store.
func NewManager(issuer Issuer, store SecretStore, app AppCredentials, rotationWindow time.Duration, logger *zap.Logger, options ...ManagerOption) *Manager {
	m := &Manager{
		issuer:         issuer,
		store:          store,
		app:            app,
		rotationWindow: rotationWindow,
		logger:         logger,
		clock:          defaultClock,
	}
	for _, optionFunc := range options {
		optionFunc(m)
	}
	return m
}

// ManagerOption for the Manager.
type ManagerOption func(*Manager)

// WithManagerClock sets the clock used for rotation and expiry decisions.
func WithManagerClock(clock clockwork.Clock) ManagerOption {
	return func(m *Manager) {
		m.clock = clock
	}
}

// Manager keeps the tokens described by a Config issued, stored and tracked in State.
type Manager struct {
	issuer         Issuer
	store          SecretStore
	app            AppCredentials
	rotationWindow time.Duration
	logger         *zap.Logger
	clock          clockwork.Clock
}

// Apply issues the tokens in the config that do not already have a valid token in state.
// Tokens that are replaced, or that are no longer part of the config, are revoked afterwards.
func (m *Manager) Apply(ctx context.Context, cfg *Config, state *State) error {
	log := m.logger.With(zap.String("namespace", cfg.Namespace), zap.String("store", string(m.store.Type())))
	log.Info("starting ghtoken", zap.Int("tokens", len(cfg.Tokens)))

	replaced := NewCollection(m.issuer, NewZapLogger(log), WithClock(m.clock))
	inUse := make(map[string]struct{}, len(cfg.Tokens))

	for _, t := range cfg.Tokens {
		inUse[t.Name] = struct{}{}
		log := log.With(zap.String("name", t.Name), zap.String("owner", t.Owner))

		record, found := state.GetRecord(t.Name)
		if found && m.isValid(record) {
			log.Info("found existing token")
			continue
		}

		// Read the previous token before it is overwritten in the store. A token that
		// cannot be read could never be revoked, so it is left in place.
		var previous *Token
		if found {
			var err error
			if previous, _, err = m.readToken(record); err != nil {
				log.Error("failed to read previous token", zap.String("path", record.Path), zap.Error(err))
				continue
			}
		}

		token, err := m.issuer.Create(ctx, m.app, &t.TokenRequest)
		if err != nil {
			log.Error("failed to create token", zap.Error(err))
			continue
		}

		path, err := m.store.Write(cfg.Namespace, &Secret{
			Name:        t.Name,
			Value:       token.Token,
			Description: tokenDescription,
		})
		if err != nil {
			log.Error("store token", zap.Error(err))
			replaced.Push(token)
			continue
		}
		log.Debug("stored token", zap.String("path", path))

		if found && record.Path != path {
			if err := m.store.Delete(record.Path); err != nil {
				log.Error("delete previous secret", zap.String("path", record.Path), zap.Error(err))
			}
		}
		state.AddRecord(&Record{
			Name:           t.Name,
			Owner:          t.Owner,
			InstallationID: token.InstallationID,
			ExpiresAt:      token.ExpiresAt,
			Path:           path,
		})
		if previous != nil {
			replaced.Push(previous)
		}
		log.Info("created new token", zap.String("expires_at", token.ExpiresAt))
	}

	if err := replaced.RevokeAll(ctx); err != nil {
		return fmt.Errorf("revoke replaced tokens: %w", err)
	}

	var orphans []*Record
	for _, r := range state.Tokens {
		if _, ok := inUse[r.Name]; !ok {
			orphans = append(orphans, r)
		}
	}
	if err := m.revokeAndRemove(ctx, log, state, orphans); err != nil {
		return err
	}
	log.Info("done processing", zap.Int("github_calls", eventctx.GetStats(ctx).CallsToGithub))
	return nil
}

// Cleanup revokes every token tracked in state, deletes the secrets and removes the records.
// If a token cannot be read or revoked, nothing is deleted and the state is left untouched.
func (m *Manager) Cleanup(ctx context.Context, state *State) error {
	log := m.logger.With(zap.String("store", string(m.store.Type())))
	log.Info("starting cleanup", zap.Int("tokens", len(state.Tokens)))

	if err := m.revokeAndRemove(ctx, log, state, state.Tokens); err != nil {
		return err
	}
	log.Info("done cleaning up", zap.Int("github_calls", eventctx.GetStats(ctx).CallsToGithub))
	return nil
}

// revokeAndRemove revokes the tokens for the records, then deletes their secrets and removes them
// from state. Nothing is deleted or removed unless every token could be read and revoked.
// Records whose secret no longer exists are removed without being revoked.
func (m *Manager) revokeAndRemove(ctx context.Context, log *zap.Logger, state *State, records []*Record) error {
	records = append([]*Record(nil), records...)

	c := NewCollection(m.issuer, NewZapLogger(log), WithClock(m.clock))
	for _, r := range records {
		token, found, err := m.readToken(r)
		if err != nil {
			return fmt.Errorf("read token %q: %w", r.Name, err)
		}
		if !found {
			log.Debug("token not found in store", zap.String("name", r.Name), zap.String("path", r.Path))
			continue
		}
		c.Push(token)
	}
	if err := c.RevokeAll(ctx); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	for _, r := range records {
		log.Info("deleting token secret", zap.String("name", r.Name), zap.String("path", r.Path))
		if err := m.store.Delete(r.Path); err != nil {
			log.Error("delete secret", zap.String("path", r.Path), zap.Error(err))
		}
		state.RemoveRecord(r.Name)
	}
	return nil
}

// readToken reads the token value for a record from the store. A nil token is returned
// without an error when the secret does not exist.
func (m *Manager) readToken(r *Record) (*Token, bool, error) {
	value, found, err := m.store.Read(r.Path)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &Token{Token: value, ExpiresAt: r.ExpiresAt, InstallationID: r.InstallationID}, true, nil
}

// isValid returns true if the token will not expire within the rotation window.
func (m *Manager) isValid(r *Record) bool {
	expires, err := ParseExpiresAt(r.ExpiresAt)
	if err != nil {
		return false
	}
	return expires.After(m.clock.Now().Add(m.rotationWindow))
}
