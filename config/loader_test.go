package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spath/config"
	"github.com/katalvlaran/spath/dijkstra"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, dijkstra.FrontierHeap, cfg.Strategy())
	assert.Nil(t, cfg.Sentinel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
frontier: linear
sentinel: -1
one_based: true
format: json
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.FrontierLinear, cfg.Strategy())
	require.NotNil(t, cfg.Sentinel)
	assert.Equal(t, int64(-1), *cfg.Sentinel)
	assert.True(t, cfg.OneBased)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color, "unset keys keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_EmptyDocument(t *testing.T) {
	cfg, err := config.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "frontiers: heap\n",
		"bad frontier":      "frontier: fibonacci\n",
		"bad format":        "format: xml\n",
		"bad color":         "color: sometimes\n",
		"negative distance": "max_distance: -4\n",
		"bad yaml":          "frontier: [heap\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode([]byte(doc))
			require.Error(t, err)
		})
	}

	_, err := config.Decode([]byte("format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestEncode_RoundTrip(t *testing.T) {
	sentinel := int64(999)
	in := config.Default()
	in.Sentinel = &sentinel
	in.Frontier = "linear"

	data, err := config.Encode(in)
	require.NoError(t, err)
	out, err := config.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
