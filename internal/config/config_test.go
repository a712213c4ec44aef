package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, int64(32<<20), cfg.MaxBody)
	require.Equal(t, uint64(256<<20), cfg.MaxOutput)
	require.Equal(t, 64, cfg.TreeCache)
	require.Empty(t, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"HUFFD_ADDR":       "127.0.0.1:9000",
		"HUFFD_MAX_BODY":   "1024",
		"HUFFD_MAX_OUTPUT": "4096",
		"HUFFD_TREE_CACHE": "0",
		"HUFFD_LOG_LEVEL":  "debug",
	}))
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)
	require.Equal(t, int64(1024), cfg.MaxBody)
	require.Equal(t, uint64(4096), cfg.MaxOutput)
	require.Equal(t, 0, cfg.TreeCache)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPort(t *testing.T) {
	cfg, err := load(env(map[string]string{"PORT": "3000"}))
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Addr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, vars := range []map[string]string{
		{"HUFFD_MAX_BODY": "lots"},
		{"HUFFD_MAX_BODY": "0"},
		{"HUFFD_MAX_OUTPUT": "-1"},
		{"HUFFD_TREE_CACHE": "-2"},
	} {
		_, err := load(env(vars))
		require.Error(t, err, "%v", vars)
	}
}
