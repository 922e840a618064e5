package validator

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// NewSanthoshCompiler returns a concrete implementation of Compiler.
// Using the santhosh-tekuri/jsonschema/v6 package.
func NewSanthoshCompiler() Compiler {
	c := jsonschema.NewCompiler()
	// 2019-09/2020-12 treat "format" as annotation-only unless the
	// compiler is told to assert it; the RDAP schemas rely on ipv4/ipv6/
	// hostname/idn-hostname/date-time format failures surfacing as real
	// validation errors.
	c.AssertFormat()
	return &santhoshCompiler{c: c}
}

// santhoshValidator wraps jsonschema.Schema to implement Validator.
type santhoshValidator struct {
	v *jsonschema.Schema
}

// Validate adapts jsonschema.Schema.Validate to match the Validator interface.
func (sv *santhoshValidator) Validate(doc JSONDocument) error {
	return sv.v.Validate(doc)
}

// Schema exposes the underlying compiled schema graph, for callers (such as
// the schema tree builder) that need to walk the graph rather than just
// validate against it. It implements SchemaProvider.
func (sv *santhoshValidator) Schema() *jsonschema.Schema {
	return sv.v
}

// santhoshCompiler wraps jsonschema.Compiler to implement Compiler.
type santhoshCompiler struct {
	mu sync.Mutex
	c  *jsonschema.Compiler
}

func (s *santhoshCompiler) AddSchema(id string, schemaData JSONSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.AddResource(id, schemaData)
}

func (s *santhoshCompiler) Compile(id string) (Validator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.c.Compile(id)
	if err != nil {
		return nil, err
	}
	return &santhoshValidator{v: v}, nil
}

func (s *santhoshCompiler) SupportedSchemaVersions() []Draft {
	return []Draft{
		Draft4,
		Draft6,
		Draft7,
		Draft2019_09,
		Draft2020_12,
	}
}

// Clear resets the compiler state, discarding every registered schema resource.
func (s *santhoshCompiler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = jsonschema.NewCompiler()
}
