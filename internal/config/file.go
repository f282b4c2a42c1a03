// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML representation of the daemon configuration. All
// fields are pointers so the merge step can distinguish "absent" from "zero".
type FileConfig struct {
	Listen           *string           `yaml:"listen"`
	DataDir          *string           `yaml:"dataDir"`
	LogLevel         *string           `yaml:"logLevel"`
	LogService       *string           `yaml:"logService"`
	SnapshotInterval *string           `yaml:"snapshotInterval"`
	SnapshotTTL      *string           `yaml:"snapshotTtl"`
	Settings         map[string]string `yaml:"settings"`

	RateLimit *struct {
		Enabled *bool `yaml:"enabled"`
		RPM     *int  `yaml:"rpm"`
		Burst   *int  `yaml:"burst"`
	} `yaml:"rateLimit"`

	Tracing *struct {
		Enabled     *bool    `yaml:"enabled"`
		Exporter    *string  `yaml:"exporter"`
		Endpoint    *string  `yaml:"endpoint"`
		Sampling    *float64 `yaml:"sampling"`
		Environment *string  `yaml:"environment"`
	} `yaml:"tracing"`
}

// loadFile reads and strictly decodes a YAML config file. Unknown keys are
// rejected with ErrUnknownConfigField so typos fail fast.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from operator flag
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg FileConfig
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			// Empty file is a valid (all-defaults) config
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}
