package ghtoken

import (
	"fmt"
)

// Config represents the user-defined configuration that should be passed to the ghtoken.Manager.Apply method.
type Config struct {
	Version   int            `json:"version"`
	Namespace string         `json:"namespace"`
	Tokens    []*TokenConfig `json:"tokens"`
}

// TokenConfig describes a named installation token.
type TokenConfig struct {
	// Name is used when storing the token and tracking it in state.
	Name string `json:"name"`

	TokenRequest `json:",inline"`
}

// Validate the configuration.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("invalid configuration version: %d", c.Version)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%q must be defined", "namespace")
	}
	names := make(map[string]struct{}, len(c.Tokens))
	for i, t := range c.Tokens {
		if t.Name == "" {
			return fmt.Errorf("tokens[%d]: %q must be defined", i, "name")
		}
		if t.Owner == "" {
			return fmt.Errorf("tokens[%d]: %q must be defined", i, "owner")
		}
		for name, level := range t.Permissions {
			switch level {
			case "read", "write", "admin":
			default:
				return fmt.Errorf("tokens[%d]: permissions: unknown access level %q for %q", i, level, name)
			}
		}
		if _, found := names[t.Name]; found {
			return fmt.Errorf("tokens[%d]: duplicate token %q", i, t.Name)
		}
		names[t.Name] = struct{}{}
	}
	return nil
}
