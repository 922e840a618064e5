package parsers

import (
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapconformance/rdapcv/internal/exception"
	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/rdapconformance/rdapcv/internal/schema"
	"github.com/rdapconformance/rdapcv/internal/validator"
)

// compileRoot compiles schemaJSON as the single root resource "root.json"
// and builds its schema.Tree, the same pipeline internal/engine runs
// against the real RDAP schema bundle.
func compileRoot(t *testing.T, schemaJSON string) (*schema.Tree, validator.Validator) {
	t.Helper()

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(schemaJSON), &raw))

	compiler := validator.NewSanthoshCompiler()
	require.NoError(t, compiler.AddSchema("root.json", raw))
	v, err := compiler.Compile("root.json")
	require.NoError(t, err)

	tree, err := schema.New("root.json", v, map[string]map[string]any{"root.json": raw})
	require.NoError(t, err)
	return tree, v
}

// validateAndParse runs docJSON through the real compiled schema, flattens
// the real *jsonschema.ValidationError it produces, and dispatches every
// leaf through the real parser registry - exercising exactly the path
// internal/engine.Engine.Validate runs, rather than hand-built Leaf values.
func validateAndParse(t *testing.T, schemaJSON, docJSON string) *results.Accumulator {
	t.Helper()

	tree, v := compileRoot(t, schemaJSON)

	var doc any
	require.NoError(t, json.Unmarshal([]byte(docJSON), &doc))

	verr := v.Validate(doc)
	require.Error(t, verr)
	ve, ok := verr.(*jsonschema.ValidationError)
	require.True(t, ok, "expected a *jsonschema.ValidationError, got %T", verr)

	leaves := exception.Flatten(ve)
	require.NotEmpty(t, leaves, "expected at least one leaf failure")

	acc := results.NewAccumulator()
	Run(Context{Tree: tree, Document: doc, Results: acc}, leaves)
	return acc
}

func TestRegexParser_RealPatternFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90000,
		"properties": {
			"handle": {"type": "string", "pattern": "^[A-Z]+$", "errorCode": -90001}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"handle":"abc"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90001, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "does not match the pattern")
}

func TestEnumParser_RealEnumFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90100,
		"properties": {
			"status": {"enum": ["active", "inactive"], "errorCode": -90101}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"status":"bogus"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90101, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "enumerated list")
}

func TestConstParser_RealConstFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90200,
		"properties": {
			"objectClassName": {"const": "domain", "errorCode": -90201}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"objectClassName":"host"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90201, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "constant value")
}

func TestContainsConstParser_RealContainsFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90300,
		"properties": {
			"tags": {"type": "array", "contains": {"const": "important"}, "errorCode": -90301}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"tags":["x","y"]}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90301, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "does not contain")
}

func TestBasicTypeParser_RealTypeFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90400,
		"properties": {
			"port43": {"type": "string", "errorCode": -90401}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"port43": 12345}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90401, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "not of the type required")
}

func TestIPv4Parser_RealFormatFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90500,
		"properties": {
			"startAddress": {"type": "string", "format": "ipv4", "errorCode": -90501}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"startAddress":"999.999.999.999"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90501, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "IPv4 address")
}

func TestIPv6Parser_RealFormatFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90600,
		"properties": {
			"startAddress": {"type": "string", "format": "ipv6", "errorCode": -90601}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"startAddress":"not-an-ipv6-address"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90601, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "IPv6 address")
}

func TestIDNHostnameParser_RealFormatFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90700,
		"properties": {
			"ldhName": {"type": "string", "format": "idn-hostname", "errorCode": -90701}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"ldhName":"not_a_valid_hostname!"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90701, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "internationalized hostname")
}

func TestHostnameInURIParser_RealFormatFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90800,
		"properties": {
			"host": {"type": "string", "format": "hostname", "errorCode": -90801}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"host":"not_a_valid_hostname!"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90801, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "hostname")
}

func TestDatetimeParser_RealFormatFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -90900,
		"properties": {
			"eventDate": {"type": "string", "format": "date-time", "errorCode": -90901}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"eventDate":"not-a-date"}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -90901, acc.Results()[0].Code)
	assert.Contains(t, acc.Results()[0].Message, "RFC 3339")
}

func TestUniqueItemsParser_RealFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -91000,
		"properties": {
			"status": {"type": "array", "uniqueItems": true, "errorCode": -91001}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"status":["active","active"]}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -91001, acc.Results()[0].Code)
}

func TestNumberParser_RealFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -91100,
		"properties": {
			"port": {"type": "integer", "minimum": 1, "errorCode": -91101}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"port": 0}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -91101, acc.Results()[0].Code)
}

func TestDependenciesParser_RealFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -91200,
		"dependentRequired": {"keyData": ["dsData"]},
		"properties": {
			"keyData": {"type": "object"},
			"dsData": {"type": "object"}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"keyData":{}}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -91200, acc.Results()[0].Code)
}

func TestComplexTypeParser_RealAnyOfFanOut(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -91300,
		"properties": {
			"value": {
				"errorCode": -91301,
				"anyOf": [
					{"type": "string", "pattern": "^[0-9]+$"},
					{"type": "boolean"}
				]
			}
		}
	}`

	acc := validateAndParse(t, schemaJSON, `{"value": "not-a-number"}`)

	require.NotEmpty(t, acc.Results())
	for _, r := range acc.Results() {
		assert.Equal(t, -91301, r.Code)
	}
}

func TestMissingKeyParser_RealRequiredFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -91400,
		"properties": {"objectClassName": {"type": "string"}},
		"required": ["objectClassName"]
	}`

	acc := validateAndParse(t, schemaJSON, `{}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -91400, acc.Results()[0].Code)
}

func TestUnknownKeyParser_RealAdditionalPropertiesFailure(t *testing.T) {
	t.Parallel()
	const schemaJSON = `{
		"type": "object",
		"errorCode": -91500,
		"properties": {"objectClassName": {"type": "string"}},
		"additionalProperties": false
	}`

	acc := validateAndParse(t, schemaJSON, `{"objectClassName":"domain","bogusKey":1}`)

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -91500, acc.Results()[0].Code)
}
