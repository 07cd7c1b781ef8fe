// Package config parses versioned YAML (or JSON) configuration for ghtoken.
package config

import (
	"fmt"

	"github.com/telia-oss/ghtoken"
	"sigs.k8s.io/yaml"
)

// Parse a YAML (or JSON) representation of ghtoken.Config.
func Parse(b []byte) (*ghtoken.Config, error) {
	var t struct {
		Version *int `json:"version"`
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("unmarshal version: %w", err)
	}
	if t.Version == nil {
		return nil, fmt.Errorf("%q must be defined", "version")
	}

	var cfg *ghtoken.Config
	switch *t.Version {
	case 1:
		if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config (version %d): %w", *t.Version, err)
		}
	default:
		return nil, fmt.Errorf("unknown configuration version: %d", *t.Version)
	}
	return cfg, nil
}
