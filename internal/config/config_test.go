package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rdapcv-config.yml")
	yaml := `
queryUri: https://rdap.example/domain/example.com
schemaBundleDir: ./schemas
datasetDir: ./datasets
useRdapProfileFeb2024: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://rdap.example/domain/example.com", cfg.QueryURI)
	assert.True(t, cfg.UseRDAPProfileFeb2024)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/rdapcv-config.yml")
	var missing *MissingConfigError
	assert.ErrorAs(t, err, &missing)
}

func TestLoad_MissingRequiredProperty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rdapcv-config.yml")
	require.NoError(t, os.WriteFile(path, []byte("queryUri: https://rdap.example\n"), 0o644))

	_, err := Load(path)
	var missing *MissingPropertyError
	assert.ErrorAs(t, err, &missing)
}
