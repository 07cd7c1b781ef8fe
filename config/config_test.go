package config_test

import (
	"strings"
	"testing"

	"github.com/telia-oss/ghtoken"
	"github.com/telia-oss/ghtoken/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		config      string
		expected    *ghtoken.Config
	}{
		{
			description: "works",
			config: strings.TrimSpace(`
---
version: 1
namespace: cloudops

tokens:
  - name: tfcmt
    owner: suzuki-shunsuke
    repositories:
      - tfcmt
    permissions:
      issues: write
  - name: org-token
    owner: telia-oss
    organization: true
            `),
			expected: &ghtoken.Config{
				Version:   1,
				Namespace: "cloudops",
				Tokens: []*ghtoken.TokenConfig{
					{
						Name: "tfcmt",
						TokenRequest: ghtoken.TokenRequest{
							Owner:        "suzuki-shunsuke",
							Repositories: []string{"tfcmt"},
							Permissions:  ghtoken.Permissions{"issues": "write"},
						},
					},
					{
						Name: "org-token",
						TokenRequest: ghtoken.TokenRequest{
							Owner:        "telia-oss",
							Organization: true,
						},
					},
				},
			},
		},
		{
			description: "supports json",
			config:      `{"version":1,"namespace":"cloudops","tokens":[{"name":"ci","owner":"telia-oss"}]}`,
			expected: &ghtoken.Config{
				Version:   1,
				Namespace: "cloudops",
				Tokens: []*ghtoken.TokenConfig{{
					Name:         "ci",
					TokenRequest: ghtoken.TokenRequest{Owner: "telia-oss"},
				}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tc.config))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		description string
		config      string
		expected    string
	}{
		{
			description: "requires a version",
			config:      `namespace: cloudops`,
			expected:    `"version" must be defined`,
		},
		{
			description: "rejects unknown versions",
			config:      `version: 2`,
			expected:    `unknown configuration version: 2`,
		},
		{
			description: "rejects unknown fields",
			config: strings.TrimSpace(`
version: 1
namespace: cloudops
tokens:
  - name: ci
    owner: telia-oss
    unknown: field
            `),
			expected: `unmarshal config (version 1)`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expected)
		})
	}
}
