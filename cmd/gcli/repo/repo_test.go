//go:build unit

package repo

import (
	"testing"

	"github.com/lerenn/gcli/pkg/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisibility(t *testing.T) {
	v, err := ParseVisibility("Private")
	require.NoError(t, err)
	assert.Equal(t, forge.VisibilityPrivate, v)

	_, err = ParseVisibility("secret")
	assert.ErrorIs(t, err, ErrInvalidVisibility)
}
