// Package config holds the TOML configuration of the merkletree REPL.
package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	merkle "github.com/estensen/merkletree"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "config.toml"

// Config is the REPL configuration.
type Config struct {
	// Prompt printed before every command.
	Prompt string `toml:"prompt"`
	// Debug enables debug logging.
	Debug bool `toml:"debug"`
	// ParallelThreshold is the level width from which parent hashes are
	// computed concurrently. 0 disables concurrent hashing.
	ParallelThreshold int `toml:"parallel_threshold"`
	// ProofDir is where "proof --save" writes proof files.
	ProofDir string `toml:"proof_dir"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Prompt:            "tree> ",
		ParallelThreshold: merkle.DefaultParallelThreshold,
		ProofDir:          ".",
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Prompt == "" {
		return errors.New("prompt must not be empty")
	}
	if c.ParallelThreshold < 0 {
		return errors.Errorf("parallel_threshold must not be negative, got %d", c.ParallelThreshold)
	}
	return nil
}

// TreeOptions returns the merkle tree options derived from the configuration.
func (c *Config) TreeOptions() []merkle.Option {
	return []merkle.Option{merkle.WithParallelThreshold(c.ParallelThreshold)}
}

// Load reads the configuration at path on top of the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return conf, nil
}

// Save encodes conf as TOML into path.
// An existing file is only replaced when overwrite is set.
func Save(conf *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Errorf("config %s already exists", path)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0644), "failed to write config %s", path)
}
