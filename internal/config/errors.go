package config

import "fmt"

// MissingConfigError is returned when rdapcv-config.yml cannot be read at
// the given path.
type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("rdapcv-config.yml missing at: %s", e.Path)
}

// InvalidYAMLError is returned when rdapcv-config.yml does not parse as
// YAML.
type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("rdapcv-config.yml is not a valid yaml document: %v", e.Wrapped)
}

// MissingPropertyError is returned when a required configuration property
// is absent.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("rdapcv-config.yml is missing required property: %s", e.Property)
}
