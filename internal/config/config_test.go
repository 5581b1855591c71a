package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".srcctx.json"), []byte(`{
		"engine": "buck2",
		"limit": 500,
		"depth": 3,
		"filterByExt": false,
		"logLevel": "debug"
	}`), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "buck2", cfg.Engine)
	assert.Equal(t, 500, cfg.Limit)
	assert.Equal(t, 3, cfg.Depth)
	assert.False(t, cfg.FilterByExt)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".srcctx.json"), []byte(`{"limit": 100}`), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Limit)
	assert.Equal(t, DefaultEngine, cfg.Engine)
	assert.Equal(t, DefaultDepth, cfg.Depth)
	assert.True(t, cfg.FilterByExt)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".srcctx.json"), []byte(`{not json`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty engine", func(c *Config) { c.Engine = "" }, "engine"},
		{"zero limit", func(c *Config) { c.Limit = 0 }, "limit"},
		{"negative depth", func(c *Config) { c.Depth = -1 }, "depth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
