package ssm_test

import (
	"testing"

	"github.com/telia-oss/ghtoken"
	secretstore "github.com/telia-oss/ghtoken/store/ssm"
	"github.com/telia-oss/ghtoken/store/ssm/ssmfakes"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var (
		namespace    = "team-name"
		secret       = &ghtoken.Secret{Name: "secret-name", Value: "ghs_secret", Description: "description"}
		pathTemplate = "/concourse/{{ .Namespace }}/{{ .Name }}"
		secretPath   = "/concourse/team-name/secret-name"
	)

	tests := []struct {
		description   string
		pathTemplate  string
		kmsKeyID      string
		secretPath    string
		putError      error
		expectedError error
	}{
		{
			description:  "ssm parameter store works",
			pathTemplate: pathTemplate,
			secretPath:   secretPath,
		},
		{
			description:  "supports arbitrary path templates",
			pathTemplate: "concourse.{{ .Namespace }}.{{ .Name }}",
			secretPath:   "concourse.team-name.secret-name",
		},
		{
			description:  "sets the kms key id",
			pathTemplate: pathTemplate,
			kmsKeyID:     "kms-key-id",
			secretPath:   secretPath,
		},
		{
			description:   "propagates aws errors",
			pathTemplate:  pathTemplate,
			secretPath:    "",
			putError:      awserr.New("failure", "", nil),
			expectedError: awserr.New("failure", "", nil),
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			client := &ssmfakes.FakeSSMAPI{}
			client.PutParameterReturns(nil, tc.putError)

			store := secretstore.New(client,
				secretstore.WithPathTemplate(tc.pathTemplate),
				secretstore.WithKMSKeyID(tc.kmsKeyID),
			)
			path, err := store.Write(namespace, secret)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.secretPath, path)
			require.Equal(t, 1, client.PutParameterCallCount())

			input := client.PutParameterArgsForCall(0)
			assert.Equal(t, "SecureString", aws.StringValue(input.Type))
			assert.Equal(t, secret.Value, aws.StringValue(input.Value))
			assert.True(t, aws.BoolValue(input.Overwrite))
			if tc.kmsKeyID != "" {
				assert.Equal(t, tc.kmsKeyID, aws.StringValue(input.KeyId))
			} else {
				assert.Nil(t, input.KeyId)
			}
		})
	}
}

func TestRead(t *testing.T) {
	var (
		secretPath  = "/concourse/team-name/secret-name"
		secretValue = "ghs_secret"
	)

	tests := []struct {
		description        string
		getParameterOutput *ssm.GetParameterOutput
		getParameterError  error
		expectedSecret     string
		expectFound        bool
		expectedError      error
	}{
		{
			description: "works as expected",
			getParameterOutput: &ssm.GetParameterOutput{
				Parameter: &ssm.Parameter{
					Value: aws.String(secretValue),
				},
			},
			expectedSecret: secretValue,
			expectFound:    true,
		},
		{
			description:       "returns false if the secret does not exist",
			getParameterError: awserr.New(ssm.ErrCodeParameterNotFound, "", nil),
			expectFound:       false,
		},
		{
			description:       "propagates aws errors",
			getParameterError: awserr.New("failure", "", nil),
			expectFound:       false,
			expectedError:     awserr.New("failure", "", nil),
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			client := &ssmfakes.FakeSSMAPI{}
			client.GetParameterReturns(tc.getParameterOutput, tc.getParameterError)

			store := secretstore.New(client)
			secret, found, err := store.Read(secretPath)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectFound, found)
			assert.Equal(t, tc.expectedSecret, secret)
			require.Equal(t, 1, client.GetParameterCallCount())
			assert.True(t, aws.BoolValue(client.GetParameterArgsForCall(0).WithDecryption))
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		description          string
		deleteParameterError error
		expectedError        error
	}{
		{
			description: "works as expected",
		},
		{
			description:          "ignores error if parameter does not exist",
			deleteParameterError: awserr.New(ssm.ErrCodeParameterNotFound, "", nil),
			expectedError:        nil,
		},
		{
			description:          "propagates aws errors",
			deleteParameterError: awserr.New("failure", "", nil),
			expectedError:        awserr.New("failure", "", nil),
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			client := &ssmfakes.FakeSSMAPI{}
			client.DeleteParameterReturns(nil, tc.deleteParameterError)

			store := secretstore.New(client)
			err := store.Delete("/concourse/team-name/secret-name")

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, 1, client.DeleteParameterCallCount())
		})
	}
}
