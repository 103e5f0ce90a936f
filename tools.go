//go:build tools

package tools

// Tool dependencies tracked with blank imports.
// Run: mockery (from the repository root) to regenerate pkg/*/mocks.
import (
	_ "github.com/vektra/mockery/v2"
)
