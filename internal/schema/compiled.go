package schema

import "github.com/santhosh-tekuri/jsonschema/v6"

// The accessor functions below isolate every assumption this package makes
// about santhosh-tekuri/jsonschema/v6's compiled Schema field names, so that
// a future library upgrade only has to be reconciled in one place.

func schemaProperties(s *jsonschema.Schema) map[string]*jsonschema.Schema {
	return s.Properties
}

func schemaItems(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Items2020 != nil {
		return s.Items2020
	}
	if single, ok := s.Items.(*jsonschema.Schema); ok {
		return single
	}
	return nil
}

func schemaRef(s *jsonschema.Schema) *jsonschema.Schema {
	return s.Ref
}

func schemaAnyOf(s *jsonschema.Schema) []*jsonschema.Schema { return s.AnyOf }
func schemaOneOf(s *jsonschema.Schema) []*jsonschema.Schema { return s.OneOf }
func schemaAllOf(s *jsonschema.Schema) []*jsonschema.Schema { return s.AllOf }

func schemaLocation(s *jsonschema.Schema) string { return s.Location }
