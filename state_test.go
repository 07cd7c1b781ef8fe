package ghtoken_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telia-oss/ghtoken"
)

func TestState(t *testing.T) {
	state := ghtoken.NewState()

	state.AddRecord(&ghtoken.Record{Name: "a", Owner: "telia-oss", InstallationID: 1, ExpiresAt: "2020-01-30T12:00:00Z", Path: "ns.a"})
	state.AddRecord(&ghtoken.Record{Name: "b", Owner: "telia-oss", InstallationID: 1, ExpiresAt: "2020-01-30T12:00:00Z", Path: "ns.b"})
	state.AddRecord(&ghtoken.Record{Name: "a", Owner: "telia-oss", InstallationID: 1, ExpiresAt: "2020-01-30T13:00:00Z", Path: "ns.a"})

	outputJSON, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(`
{"tokens":[{"name":"a","owner":"telia-oss","installation_id":1,"expires_at":"2020-01-30T13:00:00Z","path":"ns.a"},{"name":"b","owner":"telia-oss","installation_id":1,"expires_at":"2020-01-30T12:00:00Z","path":"ns.b"}]}
`), string(outputJSON))

	record, found := state.GetRecord("b")
	require.True(t, found)
	assert.Equal(t, "ns.b", record.Path)

	state.RemoveRecord("a")
	state.RemoveRecord("does-not-exist")
	_, found = state.GetRecord("a")
	assert.False(t, found)
	assert.Len(t, state.Tokens, 1)

	state.RemoveRecord("b")
	outputJSON, err = json.Marshal(state)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(outputJSON))
}

func TestBuildSecretPath(t *testing.T) {
	path, err := ghtoken.BuildSecretPath("/{{ .Namespace }}/{{ .Name }}", "team-name", "ci-token")
	require.NoError(t, err)
	assert.Equal(t, "/team-name/ci-token", path)

	_, err = ghtoken.BuildSecretPath("{{ .Namespace", "team-name", "ci-token")
	assert.Error(t, err)
}
