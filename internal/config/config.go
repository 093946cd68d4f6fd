package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mgpai22/srt2xlsx/internal/sheet"
	"gopkg.in/yaml.v3"
)

// worksheet names are limited by the xlsx format
const maxSheetNameLen = 31

type Config struct {
	Sheet       string `yaml:"sheet"`
	Strict      bool   `yaml:"strict"`
	AtomicWrite bool   `yaml:"atomic_write"`
}

func Default() *Config {
	return &Config{
		Sheet:       sheet.DefaultSheet,
		Strict:      false,
		AtomicWrite: true,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path means no config file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Sheet == "" {
		return fmt.Errorf("sheet is required")
	}
	if len([]rune(c.Sheet)) > maxSheetNameLen {
		return fmt.Errorf(
			"sheet name %q is longer than %d characters",
			c.Sheet,
			maxSheetNameLen,
		)
	}
	if strings.ContainsAny(c.Sheet, `:\/?*[]`) {
		return fmt.Errorf("sheet name %q contains one of : \\ / ? * [ ]", c.Sheet)
	}
	return nil
}
