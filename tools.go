//go:build tools

// Pins mockgen for the go:generate directives in the repo packages.
package tools

import (
	_ "go.uber.org/mock/mockgen/model"
)
