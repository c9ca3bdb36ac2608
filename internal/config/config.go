package config

import (
	"fmt"

	"github.com/gobeaver/beaver-kit/config"
)

// Config holds defaults for the command line, read from the environment.
// Flags given explicitly on the command line take precedence.
type Config struct {
	// Number of files classified concurrently.
	Jobs int `env:"JOBS,default:4"`

	LogLevel string `env:"LOG_LEVEL,default:warn"`
	JSONLog  bool   `env:"JSON_LOG,default:false"`

	// Classify memory mapped files instead of reading a fixed window.
	UseMmap bool `env:"MMAP,default:false"`

	// Compute an xxhash digest of every identified file.
	Hash bool `env:"HASH,default:false"`
}

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "IMGSNIFF_"

// Load returns the configuration found in IMGSNIFF_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
