package ghtoken_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/telia-oss/ghtoken"
	"github.com/telia-oss/ghtoken/eventctx"
	"github.com/telia-oss/ghtoken/ghtokenfakes"
	"github.com/telia-oss/ghtoken/store/inprocess"
)

var (
	testApp    = ghtoken.AppCredentials{AppID: "1", PrivateKey: "private-key"}
	testConfig = &ghtoken.Config{
		Version:   1,
		Namespace: "team-name",
		Tokens: []*ghtoken.TokenConfig{{
			Name:         "ci-token",
			TokenRequest: ghtoken.TokenRequest{Owner: "telia-oss", Repositories: []string{"ghtoken"}},
		}},
	}
)

func TestManagerApply(t *testing.T) {
	tests := []struct {
		description         string
		records             []*ghtoken.Record
		secrets             map[string]string
		expectedSecrets     map[string]string
		expectedRecords     []*ghtoken.Record
		expectedCreateCalls int
		expectedRevoked     []string
	}{
		{
			description:     "creates new tokens",
			expectedSecrets: map[string]string{"team-name.ci-token": "ghs_new"},
			expectedRecords: []*ghtoken.Record{{
				Name:           "ci-token",
				Owner:          "telia-oss",
				InstallationID: 42,
				ExpiresAt:      "2024-05-01T13:00:00Z",
				Path:           "team-name.ci-token",
			}},
			expectedCreateCalls: 1,
		},
		{
			description: "keeps valid tokens",
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:30:00Z",
				Path:      "team-name.ci-token",
			}},
			secrets:         map[string]string{"ci-token": "ghs_old"},
			expectedSecrets: map[string]string{"team-name.ci-token": "ghs_old"},
			expectedRecords: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:30:00Z",
				Path:      "team-name.ci-token",
			}},
			expectedCreateCalls: 0,
		},
		{
			description: "rotates tokens within the rotation window and revokes the old token",
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:05:00Z",
				Path:      "team-name.ci-token",
			}},
			secrets:         map[string]string{"ci-token": "ghs_old"},
			expectedSecrets: map[string]string{"team-name.ci-token": "ghs_new"},
			expectedRecords: []*ghtoken.Record{{
				Name:           "ci-token",
				Owner:          "telia-oss",
				InstallationID: 42,
				ExpiresAt:      "2024-05-01T13:00:00Z",
				Path:           "team-name.ci-token",
			}},
			expectedCreateCalls: 1,
			expectedRevoked:     []string{"ghs_old"},
		},
		{
			description: "does not revoke expired tokens",
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T11:00:00Z",
				Path:      "team-name.ci-token",
			}},
			secrets:         map[string]string{"ci-token": "ghs_old"},
			expectedSecrets: map[string]string{"team-name.ci-token": "ghs_new"},
			expectedRecords: []*ghtoken.Record{{
				Name:           "ci-token",
				Owner:          "telia-oss",
				InstallationID: 42,
				ExpiresAt:      "2024-05-01T13:00:00Z",
				Path:           "team-name.ci-token",
			}},
			expectedCreateCalls: 1,
		},
		{
			description: "revokes tokens that are no longer configured",
			records: []*ghtoken.Record{{
				Name:           "ci-token",
				Owner:          "telia-oss",
				InstallationID: 42,
				ExpiresAt:      "2024-05-01T12:30:00Z",
				Path:           "team-name.ci-token",
			}, {
				Name:      "removed-token",
				ExpiresAt: "2024-05-01T12:30:00Z",
				Path:      "team-name.removed-token",
			}},
			secrets: map[string]string{
				"ci-token":      "ghs_current",
				"removed-token": "ghs_removed",
			},
			expectedSecrets: map[string]string{"team-name.ci-token": "ghs_current"},
			expectedRecords: []*ghtoken.Record{{
				Name:           "ci-token",
				Owner:          "telia-oss",
				InstallationID: 42,
				ExpiresAt:      "2024-05-01T12:30:00Z",
				Path:           "team-name.ci-token",
			}},
			expectedCreateCalls: 0,
			expectedRevoked:     []string{"ghs_removed"},
		},
		{
			description: "does not revoke expired tokens that are no longer configured",
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:30:00Z",
				Path:      "team-name.ci-token",
			}, {
				Name:      "removed-token",
				ExpiresAt: "2024-05-01T11:00:00Z",
				Path:      "team-name.removed-token",
			}},
			secrets: map[string]string{
				"ci-token":      "ghs_current",
				"removed-token": "ghs_removed",
			},
			expectedSecrets: map[string]string{"team-name.ci-token": "ghs_current"},
			expectedRecords: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:30:00Z",
				Path:      "team-name.ci-token",
			}},
			expectedCreateCalls: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			issuer := &ghtokenfakes.FakeIssuer{}
			issuer.CreateReturns(&ghtoken.Token{Token: "ghs_new", ExpiresAt: "2024-05-01T13:00:00Z", InstallationID: 42}, nil)

			store := inprocess.New()
			for name, value := range tc.secrets {
				_, err := store.Write(testConfig.Namespace, &ghtoken.Secret{Name: name, Value: value})
				require.NoError(t, err)
			}
			state := &ghtoken.State{Tokens: tc.records}

			m := ghtoken.NewManager(issuer, store, testApp, 10*time.Minute, zaptest.NewLogger(t),
				ghtoken.WithManagerClock(clockwork.NewFakeClockAt(now)),
			)
			ctx := eventctx.SetStats(context.TODO(), &eventctx.Stats{})

			err := m.Apply(ctx, testConfig, state)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedCreateCalls, issuer.CreateCallCount())
			if tc.expectedCreateCalls > 0 {
				_, app, request := issuer.CreateArgsForCall(0)
				assert.Equal(t, testApp, app)
				assert.Equal(t, &testConfig.Tokens[0].TokenRequest, request)
			}

			var revoked []string
			for i := 0; i < issuer.RevokeCallCount(); i++ {
				_, token := issuer.RevokeArgsForCall(i)
				revoked = append(revoked, token)
			}
			assert.Equal(t, tc.expectedRevoked, revoked)
			assert.Equal(t, tc.expectedRecords, state.Tokens)

			for path, value := range tc.expectedSecrets {
				actual, found, err := store.Read(path)
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, value, actual)
			}
			_, found, err := store.Read("team-name.removed-token")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestManagerApplyCreateFailure(t *testing.T) {
	issuer := &ghtokenfakes.FakeIssuer{}
	issuer.CreateReturns(nil, &ghtoken.InstallationNotFoundError{Owner: "telia-oss", Err: errors.New("not found")})

	store := inprocess.New()
	state := ghtoken.NewState()

	m := ghtoken.NewManager(issuer, store, testApp, 10*time.Minute, zaptest.NewLogger(t),
		ghtoken.WithManagerClock(clockwork.NewFakeClockAt(now)),
	)
	require.NoError(t, m.Apply(context.TODO(), testConfig, state))
	assert.Empty(t, state.Tokens)
	assert.Equal(t, 0, issuer.RevokeCallCount())
}

func TestManagerCleanup(t *testing.T) {
	tests := []struct {
		description     string
		revokeError     error
		expectError     bool
		expectedRevoked []string
		expectedRecords int
	}{
		{
			description:     "revokes all tokens and removes them",
			expectedRevoked: []string{"ghs_a", "ghs_b"},
			expectedRecords: 0,
		},
		{
			description:     "leaves the state untouched if revocation fails",
			revokeError:     &ghtoken.RevocationError{Err: errors.New("bad credentials")},
			expectError:     true,
			expectedRevoked: []string{"ghs_a"},
			expectedRecords: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			issuer := &ghtokenfakes.FakeIssuer{}
			issuer.RevokeReturns(tc.revokeError)

			store := inprocess.New()
			for name, value := range map[string]string{"a": "ghs_a", "b": "ghs_b", "expired": "ghs_expired"} {
				_, err := store.Write("team-name", &ghtoken.Secret{Name: name, Value: value})
				require.NoError(t, err)
			}
			state := &ghtoken.State{Tokens: []*ghtoken.Record{
				{Name: "a", ExpiresAt: "2024-05-01T13:00:00Z", Path: "team-name.a"},
				{Name: "expired", ExpiresAt: "2024-05-01T11:00:00Z", Path: "team-name.expired"},
				{Name: "missing", ExpiresAt: "2024-05-01T13:00:00Z", Path: "team-name.missing"},
				{Name: "b", ExpiresAt: "2024-05-01T13:00:00Z", Path: "team-name.b"},
			}}

			m := ghtoken.NewManager(issuer, store, testApp, 10*time.Minute, zaptest.NewLogger(t),
				ghtoken.WithManagerClock(clockwork.NewFakeClockAt(now)),
			)
			err := m.Cleanup(context.TODO(), state)
			if tc.expectError {
				var revocationErr *ghtoken.RevocationError
				assert.True(t, errors.As(err, &revocationErr))
			} else {
				require.NoError(t, err)
			}

			var revoked []string
			for i := 0; i < issuer.RevokeCallCount(); i++ {
				_, token := issuer.RevokeArgsForCall(i)
				revoked = append(revoked, token)
			}
			assert.Equal(t, tc.expectedRevoked, revoked)
			assert.Len(t, state.Tokens, tc.expectedRecords)

			_, found, err := store.Read("team-name.a")
			require.NoError(t, err)
			assert.Equal(t, tc.expectError, found)
		})
	}
}

func TestManagerStoreErrors(t *testing.T) {
	errThrottled := errors.New("throttled")

	tests := []struct {
		description         string
		cleanup             bool
		records             []*ghtoken.Record
		readErr             error
		writeErr            error
		expectedErr         string
		expectedCreateCalls int
		expectedWriteCalls  int
		expectedRevoked     []string
		expectedRecords     int
	}{
		{
			description: "apply leaves tokens that cannot be read in place",
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:05:00Z",
				Path:      "team-name.ci-token",
			}},
			readErr:         errThrottled,
			expectedRecords: 1,
		},
		{
			description:         "apply revokes new tokens that cannot be stored",
			writeErr:            errThrottled,
			expectedCreateCalls: 1,
			expectedWriteCalls:  1,
			expectedRevoked:     []string{"ghs_new"},
			expectedRecords:     0,
		},
		{
			description: "apply keeps unconfigured tokens that cannot be read",
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2024-05-01T12:30:00Z",
				Path:      "team-name.ci-token",
			}, {
				Name:      "removed-token",
				ExpiresAt: "2099-01-01T00:00:00Z",
				Path:      "team-name.removed-token",
			}},
			readErr:         errThrottled,
			expectedErr:     `read token "removed-token": throttled`,
			expectedRecords: 2,
		},
		{
			description: "cleanup keeps tokens that cannot be read",
			cleanup:     true,
			records: []*ghtoken.Record{{
				Name:      "ci-token",
				ExpiresAt: "2099-01-01T00:00:00Z",
				Path:      "team-name.ci-token",
			}},
			readErr:         errThrottled,
			expectedErr:     `read token "ci-token": throttled`,
			expectedRecords: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			issuer := &ghtokenfakes.FakeIssuer{}
			issuer.CreateReturns(&ghtoken.Token{Token: "ghs_new", ExpiresAt: "2024-05-01T13:00:00Z", InstallationID: 42}, nil)

			store := &ghtokenfakes.FakeSecretStore{}
			store.TypeReturns(ghtoken.SSM)
			store.ReadReturns("", false, tc.readErr)
			store.WriteReturns("team-name.ci-token", tc.writeErr)

			state := &ghtoken.State{Tokens: tc.records}
			m := ghtoken.NewManager(issuer, store, testApp, 10*time.Minute, zaptest.NewLogger(t),
				ghtoken.WithManagerClock(clockwork.NewFakeClockAt(now)),
			)

			var err error
			if tc.cleanup {
				err = m.Cleanup(context.TODO(), state)
			} else {
				err = m.Apply(context.TODO(), testConfig, state)
			}
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				assert.ErrorIs(t, err, errThrottled)
			} else {
				require.NoError(t, err)
			}

			var revoked []string
			for i := 0; i < issuer.RevokeCallCount(); i++ {
				_, token := issuer.RevokeArgsForCall(i)
				revoked = append(revoked, token)
			}
			assert.Equal(t, tc.expectedRevoked, revoked)
			assert.Equal(t, tc.expectedCreateCalls, issuer.CreateCallCount())
			assert.Equal(t, tc.expectedWriteCalls, store.WriteCallCount())
			assert.Equal(t, 0, store.DeleteCallCount())
			assert.Len(t, state.Tokens, tc.expectedRecords)
		})
	}
}
