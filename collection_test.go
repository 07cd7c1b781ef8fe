package ghtoken_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/telia-oss/ghtoken"
	"github.com/telia-oss/ghtoken/ghtokenfakes"
)

const (
	skipMessage   = "skip revoking GitHub App token as it has already expired"
	revokeMessage = "revoking GitHub App token"
)

var (
	now          = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	expiredToken = &ghtoken.Token{Token: "ghs_expired", ExpiresAt: "2024-05-01T11:00:00Z", InstallationID: 1}
	validTokenA  = &ghtoken.Token{Token: "ghs_a", ExpiresAt: "2024-05-01T13:00:00Z", InstallationID: 1}
	validTokenB  = &ghtoken.Token{Token: "ghs_b", ExpiresAt: "2024-05-01T13:00:00Z", InstallationID: 2}
	errRevoke    = errors.New("revoke failed")
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Info(message string) {
	l.messages = append(l.messages, message)
}

func TestCollection_RevokeAll(t *testing.T) {
	assert := NewGomegaWithT(t)

	revoker := &ghtokenfakes.FakeRevoker{}
	logger := &recordingLogger{}

	c := ghtoken.NewCollection(revoker, logger, ghtoken.WithClock(clockwork.NewFakeClockAt(now)))
	c.Push(expiredToken)
	c.Push(validTokenA)
	assert.Expect(c.Len()).To(Equal(2))

	// The expired token is skipped, and only the valid token is revoked.
	err := c.RevokeAll(context.TODO())
	assert.Expect(err).To(BeNil())
	assert.Expect(revoker.RevokeCallCount()).To(Equal(1))

	_, token := revoker.RevokeArgsForCall(0)
	assert.Expect(token).To(Equal("ghs_a"))
	assert.Expect(logger.messages).To(Equal([]string{skipMessage, revokeMessage}))
}

func TestCollection_RevokeAllStopsOnFirstError(t *testing.T) {
	assert := NewGomegaWithT(t)

	revoker := &ghtokenfakes.FakeRevoker{}
	revoker.RevokeReturnsOnCall(0, errRevoke)
	logger := &recordingLogger{}

	c := ghtoken.NewCollection(revoker, logger, ghtoken.WithClock(clockwork.NewFakeClockAt(now)))
	c.Push(validTokenA)
	c.Push(validTokenB)

	// The first revocation fails, so the second is never attempted.
	err := c.RevokeAll(context.TODO())
	assert.Expect(err).To(MatchError(errRevoke))
	assert.Expect(revoker.RevokeCallCount()).To(Equal(1))
	assert.Expect(logger.messages).To(Equal([]string{revokeMessage}))
}

func TestCollection_RevokeAllInPushOrder(t *testing.T) {
	assert := NewGomegaWithT(t)

	revoker := &ghtokenfakes.FakeRevoker{}
	c := ghtoken.NewCollection(revoker, nil, ghtoken.WithClock(clockwork.NewFakeClockAt(now)))
	c.Push(validTokenB)
	c.Push(validTokenA)
	c.Push(validTokenB)

	assert.Expect(c.RevokeAll(context.TODO())).To(Succeed())
	assert.Expect(revoker.RevokeCallCount()).To(Equal(3))

	var revoked []string
	for i := 0; i < revoker.RevokeCallCount(); i++ {
		_, token := revoker.RevokeArgsForCall(i)
		revoked = append(revoked, token)
	}
	assert.Expect(revoked).To(Equal([]string{"ghs_b", "ghs_a", "ghs_b"}))
}

func TestCollection_RevokeAllInvalidTimestamp(t *testing.T) {
	assert := NewGomegaWithT(t)

	revoker := &ghtokenfakes.FakeRevoker{}
	c := ghtoken.NewCollection(revoker, ghtoken.NopLogger)
	c.Push(&ghtoken.Token{Token: "ghs_a", ExpiresAt: "soon"})
	c.Push(validTokenA)

	err := c.RevokeAll(context.TODO())

	var timestampErr *ghtoken.InvalidTimestampError
	assert.Expect(errors.As(err, &timestampErr)).To(BeTrue())
	assert.Expect(revoker.RevokeCallCount()).To(Equal(0))
}

func TestCollection_ZapLogger(t *testing.T) {
	assert := NewGomegaWithT(t)

	core, logs := observer.New(zap.InfoLevel)
	revoker := &ghtokenfakes.FakeRevoker{}

	c := ghtoken.NewCollection(revoker, ghtoken.NewZapLogger(zap.New(core)), ghtoken.WithClock(clockwork.NewFakeClockAt(now)))
	c.Push(expiredToken)
	c.Push(validTokenA)
	assert.Expect(c.RevokeAll(context.TODO())).To(Succeed())

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Expect(messages).To(Equal([]string{skipMessage, revokeMessage}))
}
