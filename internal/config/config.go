// Package config loads rdapcv-config.yml, the one YAML configuration file
// this validator reads, following the same load-then-validate shape the
// teacher's internal/config package uses for its own config file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the validator's run configuration.
type Config struct {
	// QueryURI is the RDAP query URI the captured response answers, used
	// to derive rdap.QueryType and to check query-URI/label consistency.
	QueryURI string `yaml:"queryUri"`
	// SchemaBundleDir holds the JSON Schema resources (the RDAP Response
	// Profile schema bundle) this validator compiles against.
	SchemaBundleDir string `yaml:"schemaBundleDir"`
	// DatasetDir holds the reference datasets (EPP ROID registry, IANA
	// registries, IP special-purpose registries).
	DatasetDir string `yaml:"datasetDir"`
	// UseRDAPProfileFeb2024 selects the February 2024 RDAP Response
	// Profile (2.1) over the 2019 baseline, changing which of the
	// response-profile checks in internal/profile/checks apply.
	UseRDAPProfileFeb2024 bool `yaml:"useRdapProfileFeb2024"`
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MissingConfigError{Path: path}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every property required to run a validation is
// present.
func (c *Config) Validate() error {
	if c.SchemaBundleDir == "" {
		return &MissingPropertyError{Property: "schemaBundleDir"}
	}
	if c.DatasetDir == "" {
		return &MissingPropertyError{Property: "datasetDir"}
	}
	return nil
}
