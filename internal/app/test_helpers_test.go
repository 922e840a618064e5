package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalDomainSchema = `{
  "$id": "domain.json",
  "title": "domain",
  "type": "object",
  "errorCode": -12000,
  "properties": {
    "objectClassName": {"type": "string"}
  },
  "required": ["objectClassName"]
}`

// conformingDomainResponse passes minimalDomainSchema and every profile
// check the engine registers: it carries an (empty) rdapConformance array,
// which the empty extensions dataset cannot flag, and the two notices the
// notices check requires.
const conformingDomainResponse = `{"objectClassName":"domain","rdapConformance":[],"notices":[` +
	`{"title":"Status Codes","links":[{"href":"https://icann.org/epp"}]},` +
	`{"title":"RDDS Inaccuracy Complaint Form","links":[{"href":"https://icann.org/wicf"}]}]}`

// missingObjectClassNameResponse satisfies every profile check but omits
// the schema's one required property, so it yields exactly one finding.
const missingObjectClassNameResponse = `{"rdapConformance":[],"notices":[` +
	`{"title":"Status Codes","links":[{"href":"https://icann.org/epp"}]},` +
	`{"title":"RDDS Inaccuracy Complaint Form","links":[{"href":"https://icann.org/wicf"}]}]}`

var fixtureDatasetFiles = []string{
	"epp-roid.json",
	"rdap-extensions.json",
	"rdap-status.json",
	"ipv4-special-registry.json",
	"ipv6-special-registry.json",
}

// setupEngineFixture writes a minimal schema bundle and empty dataset
// bundle, plus an rdapcv-config.yml pointing at both, and returns the
// config file path.
func setupEngineFixture(t *testing.T) string {
	t.Helper()

	schemaDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(schemaDir, "domain.json"), []byte(minimalDomainSchema), 0o600))

	datasetDir := t.TempDir()
	for _, name := range fixtureDatasetFiles {
		require.NoError(t, os.WriteFile(filepath.Join(datasetDir, name), []byte("[]"), 0o600))
	}

	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, "rdapcv-config.yml")
	cfgData := fmt.Sprintf("schemaBundleDir: %s\ndatasetDir: %s\n", schemaDir, datasetDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o600))
	return cfgPath
}

// mockEnvProvider is a test double for fs.EnvProvider.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.values[key]
}
