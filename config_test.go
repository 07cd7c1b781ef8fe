package ghtoken_test

import (
	"strings"
	"testing"

	"github.com/telia-oss/ghtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		description string
		config      string
		expected    string
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
    repositories: [tfcmt]
    permissions:
      issues: write
      contents: read
            `),
		},
		{
			description: "requires version 1",
			config: strings.TrimSpace(`
---
version: 2
namespace: cloudops
            `),
			expected: "invalid configuration version: 2",
		},
		{
			description: "requires a namespace",
			config: strings.TrimSpace(`
---
version: 1
            `),
			expected: `"namespace" must be defined`,
		},
		{
			description: "requires token names",
			config: strings.TrimSpace(`
---
version: 1
namespace: cloudops
tokens:
  - owner: telia-oss
            `),
			expected: `tokens[0]: "name" must be defined`,
		},
		{
			description: "requires an owner",
			config: strings.TrimSpace(`
---
version: 1
namespace: cloudops
tokens:
  - name: ci
            `),
			expected: `tokens[0]: "owner" must be defined`,
		},
		{
			description: "rejects unknown access levels",
			config: strings.TrimSpace(`
---
version: 1
namespace: cloudops
tokens:
  - name: ci
    owner: telia-oss
    permissions:
      issues: delete
            `),
			expected: `tokens[0]: permissions: unknown access level "delete" for "issues"`,
		},
		{
			description: "rejects duplicate names",
			config: strings.TrimSpace(`
---
version: 1
namespace: cloudops
tokens:
  - name: ci
    owner: telia-oss
  - name: ci
    owner: telia-oss
            `),
			expected: `tokens[1]: duplicate token "ci"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var cfg ghtoken.Config
			err := yaml.Unmarshal([]byte(tc.config), &cfg)
			require.NoError(t, err)

			err = cfg.Validate()
			if tc.expected == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.expected)
			}
		})
	}
}
