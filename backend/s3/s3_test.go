package s3_test

import (
	"context"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telia-oss/ghtoken"
	backend "github.com/telia-oss/ghtoken/backend/s3"
	"github.com/telia-oss/ghtoken/backend/s3/s3fakes"
)

func TestS3BackendLoad(t *testing.T) {
	tests := []struct {
		description   string
		body          string
		getError      error
		expected      *ghtoken.State
		expectedError bool
	}{
		{
			description: "s3 backend works",
			body:        `{"tokens":[{"name":"ci-token","owner":"telia-oss","installation_id":42,"expires_at":"2099-01-01T00:00:00Z","path":"/example/ci-token"}]}`,
			expected: &ghtoken.State{Tokens: []*ghtoken.Record{{
				Name:           "ci-token",
				Owner:          "telia-oss",
				InstallationID: 42,
				ExpiresAt:      "2099-01-01T00:00:00Z",
				Path:           "/example/ci-token",
			}}},
		},
		{
			description: "returns empty state if the key does not exist",
			getError:    awserr.New(s3.ErrCodeNoSuchKey, "", nil),
			expected:    ghtoken.NewState(),
		},
		{
			description:   "propagates aws errors",
			getError:      awserr.New("failure", "", nil),
			expectedError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			fakeS3 := &s3fakes.FakeS3API{}
			if tc.getError != nil {
				fakeS3.GetObjectReturns(nil, tc.getError)
			} else {
				fakeS3.GetObjectReturns(&s3.GetObjectOutput{Body: ioutil.NopCloser(strings.NewReader(tc.body))}, nil)
			}

			b := backend.New(fakeS3, "bucket")
			state, err := b.Load(context.TODO(), "key")
			if tc.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, state)

			input := fakeS3.GetObjectArgsForCall(0)
			assert.Equal(t, "bucket", aws.StringValue(input.Bucket))
			assert.Equal(t, "key", aws.StringValue(input.Key))
		})
	}
}

func TestS3BackendSave(t *testing.T) {
	fakeS3 := &s3fakes.FakeS3API{}

	state := ghtoken.NewState()
	state.AddRecord(&ghtoken.Record{Name: "ci-token", ExpiresAt: "2099-01-01T00:00:00Z"})

	b := backend.New(fakeS3, "bucket")
	require.NoError(t, b.Save(context.TODO(), "key", state))
	require.Equal(t, 1, fakeS3.PutObjectCallCount())

	input := fakeS3.PutObjectArgsForCall(0)
	body, err := io.ReadAll(input.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"tokens":[{"name":"ci-token","owner":"","installation_id":0,"expires_at":"2099-01-01T00:00:00Z","path":""}]}`, string(body))
}
