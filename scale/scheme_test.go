package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachocab/plot/scale"
)

// TestScheme verifies lookup against the Brewer palette set.
func TestScheme(t *testing.T) {
	colors, err := scale.Scheme("Set2", 3)
	require.NoError(t, err)
	assert.Len(t, colors, 3)
}

// TestScheme_SmallCount verifies counts below the smallest palette
// variant truncate instead of failing.
func TestScheme_SmallCount(t *testing.T) {
	colors, err := scale.Scheme("Blues", 2)
	require.NoError(t, err)
	assert.Len(t, colors, 2)
}

// TestScheme_Unknown verifies the error for unknown names and senseless
// counts.
func TestScheme_Unknown(t *testing.T) {
	_, err := scale.Scheme("NotAPalette", 3)
	assert.ErrorIs(t, err, scale.ErrUnknownScheme)

	_, err = scale.Scheme("Set2", 0)
	assert.ErrorIs(t, err, scale.ErrUnknownScheme)
}
