// ===== internal/config/config.go =====
package config

import (
	"log"

	"gopkg.in/ini.v1"

	"ipfill/internal/gapfill"
)

// Config holds all tool configuration
type Config struct {
	// File paths
	ListFile   string
	OutputFile string

	// Gap filling
	MaxGap uint

	// Feature flags
	Watch bool
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		MaxGap: gapfill.DefaultMaxGap,
	}
}

// LoadFromFile loads configuration from INI file
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		log.Printf("Skipping config file %s: %s", filename, err)
		return err
	}

	section := cfg.Section("")
	c.ListFile = section.Key("listfile").MustString(c.ListFile)
	c.OutputFile = section.Key("outputfile").MustString(c.OutputFile)
	c.MaxGap = section.Key("maxgap").MustUint(c.MaxGap)
	c.Watch = section.Key("watch").MustBool(c.Watch)

	return nil
}

// New creates a new configuration instance. Command-line flags are
// applied on top by the caller.
func New(configFile string) *Config {
	cfg := DefaultConfig()
	cfg.LoadFromFile(configFile)
	return cfg
}
