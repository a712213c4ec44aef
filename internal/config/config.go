// Package config loads huffd settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

type Config struct {
	Addr      string // listen address
	MaxBody   int64  // request body limit in bytes
	MaxOutput uint64 // decoded message limit in bytes
	TreeCache int    // trees kept by the decoder
	LogLevel  string
}

const (
	defaultAddr      = ":8080"
	defaultMaxBody   = 32 << 20
	defaultMaxOutput = 256 << 20
	defaultTreeCache = 64
)

// Load reads HUFFD_* variables, using defaults for unset ones.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:      defaultAddr,
		MaxBody:   defaultMaxBody,
		MaxOutput: defaultMaxOutput,
		TreeCache: defaultTreeCache,
		LogLevel:  getenv("HUFFD_LOG_LEVEL"),
	}
	if v := getenv("HUFFD_ADDR"); v != "" {
		cfg.Addr = v
	} else if port := getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := getenv("HUFFD_MAX_BODY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("HUFFD_MAX_BODY: want a positive byte count, got %q", v)
		}
		cfg.MaxBody = n
	}
	if v := getenv("HUFFD_MAX_OUTPUT"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return nil, errors.Errorf("HUFFD_MAX_OUTPUT: want a positive byte count, got %q", v)
		}
		cfg.MaxOutput = n
	}
	if v := getenv("HUFFD_TREE_CACHE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errors.Errorf("HUFFD_TREE_CACHE: want a non-negative count, got %q", v)
		}
		cfg.TreeCache = n
	}
	return cfg, nil
}
