//go:build tools
// +build tools

package ghtoken

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
