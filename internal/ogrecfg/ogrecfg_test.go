// Copyright CuriousMike56, 2026. All rights reserved.

package ogrecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCfg = `# Legacy Ogre terrain config
DetailTile=3
PageSource=Heightmap
Heightmap.image=aspen.raw
Heightmap.raw.size=1025
Heightmap.raw.bpp=2
Heightmap.flip=true
PageWorldX=3000
PageWorldZ=3000
MaxHeight=300
MaxPixelError=8
WorldTexture=aspen_tx.jpg
DetailTexture=detailgrass.jpg
; editor scratch note
stray line the old engine ignored
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleCfg))
	require.NoError(t, err)

	assert.Equal(t, "1025", cfg.Get(KeyHeightmapSize))
	assert.Equal(t, "2", cfg.Get(KeyHeightmapBpp))
	assert.Equal(t, "aspen.raw", cfg.Get(KeyHeightmapImage))
	assert.Equal(t, "3000", cfg.Get(KeyPageWorldX))
	assert.Equal(t, "3000", cfg.Get(KeyPageWorldZ))
	assert.Equal(t, "300", cfg.Get(KeyMaxHeight))
	assert.Equal(t, "aspen_tx.jpg", cfg.Get(KeyWorldTexture))
	assert.Equal(t, "detailgrass.jpg", cfg.Get(KeyDetailTexture))

	assert.True(t, cfg.Has(KeyWorldTexture))
	assert.False(t, cfg.Has("NoSuchKey"))
	assert.Equal(t, "", cfg.Get("NoSuchKey"))
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "true", content: "Heightmap.flip=true\n", want: true},
		{name: "mixed case", content: "Heightmap.flip=True\n", want: true},
		{name: "false", content: "Heightmap.flip=false\n", want: false},
		{name: "absent", content: "PageWorldX=3000\n", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Flip())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("complete config", func(t *testing.T) {
		cfg, err := Parse([]byte(sampleCfg))
		require.NoError(t, err)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing keys are all named", func(t *testing.T) {
		cfg, err := Parse([]byte("Heightmap.raw.size=1025\nPageWorldX=3000\n"))
		require.NoError(t, err)

		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), KeyHeightmapBpp)
		assert.Contains(t, err.Error(), KeyPageWorldZ)
		assert.Contains(t, err.Error(), KeyMaxHeight)
	})

	t.Run("empty value counts as missing", func(t *testing.T) {
		cfg, err := Parse([]byte("Heightmap.raw.size=\nHeightmap.raw.bpp=2\nPageWorldX=1\nPageWorldZ=1\nMaxHeight=1\n"))
		require.NoError(t, err)

		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), KeyHeightmapSize)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aspen.cfg")
	require.NoError(t, os.WriteFile(path, []byte(sampleCfg), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "aspen_tx.jpg", cfg.Get(KeyWorldTexture))

	_, err = Load(filepath.Join(dir, "missing.cfg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.cfg")
}
