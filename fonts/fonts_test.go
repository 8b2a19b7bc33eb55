package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(16))

	face := HUD.Get()
	require.NotNil(t, face)
	assert.Positive(t, face.Metrics().Height.Ceil())
	assert.NotNil(t, Debug.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	require.Error(t, err)
	assert.Panics(t, func() { FontName("broken").Get() })
}
