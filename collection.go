package ghtoken

import (
	"context"

	"github.com/jonboulle/clockwork"
)

// NewCollection returns an empty Collection that revokes tokens using the revoker
// and reports progress to the logger.
func NewCollection(revoker Revoker, logger Logger, options ...CollectionOption) *Collection {
	c := &Collection{
		revoker: revoker,
		logger:  logger,
		clock:   defaultClock,
	}
	for _, optionFunc := range options {
		optionFunc(c)
	}
	if c.logger == nil {
		c.logger = NopLogger
	}
	return c
}

// CollectionOption for the Collection.
type CollectionOption func(*Collection)

// WithClock sets the clock used to decide whether a token has expired.
func WithClock(clock clockwork.Clock) CollectionOption {
	return func(c *Collection) {
		c.clock = clock
	}
}

// Collection accumulates issued tokens so they can be revoked together.
type Collection struct {
	tokens  []*Token
	revoker Revoker
	logger  Logger
	clock   clockwork.Clock
}

// Push appends a token to the collection.
func (c *Collection) Push(token *Token) {
	c.tokens = append(c.tokens, token)
}

// Len returns the number of tokens in the collection.
func (c *Collection) Len() int {
	return len(c.tokens)
}

// RevokeAll revokes the tokens one at a time in the order they were pushed. Tokens that
// have already expired are skipped. The first error stops the iteration and is returned.
func (c *Collection) RevokeAll(ctx context.Context) error {
	for _, token := range c.tokens {
		expired, err := hasExpired(c.clock, token.ExpiresAt)
		if err != nil {
			return err
		}
		if expired {
			c.logger.Info("skip revoking GitHub App token as it has already expired")
			continue
		}
		c.logger.Info("revoking GitHub App token")
		if err := c.revoker.Revoke(ctx, token.Token); err != nil {
			return err
		}
	}
	return nil
}
