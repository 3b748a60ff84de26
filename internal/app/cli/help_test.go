package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_renderHelp(t *testing.T) {
	help := renderHelp()

	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "Examples:")
	assert.Contains(t, help, "swatch generate --seed <COLOR>")
	assert.Contains(t, help, "swatch init [--force] [--dry-run]")
	assert.Contains(t, help, "--route /gradient")
}
