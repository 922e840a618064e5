package schema

import "fmt"

// BuildError is returned by New when the compiled schema graph cannot be
// turned into a Tree - this indicates a malformed schema bundle, not a
// validation failure of an RDAP document.
type BuildError struct {
	ResourceID string
	Reason     string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("schema: cannot build tree for resource %q: %s", e.ResourceID, e.Reason)
}

// AnnotationNotFoundError is returned by SearchBottomMostErrorCode when
// neither the starting node nor any of its ancestors carries the requested
// annotation.
type AnnotationNotFoundError struct {
	Annotation string
	Pointer    string
}

func (e *AnnotationNotFoundError) Error() string {
	return fmt.Sprintf("schema: no ancestor of %q carries annotation %q", e.Pointer, e.Annotation)
}

// SchemaIDNotFoundError is returned by FindJSONPointersBySchemaID when no
// node in the tree carries the requested schema id.
type SchemaIDNotFoundError struct {
	SchemaID string
}

func (e *SchemaIDNotFoundError) Error() string {
	return fmt.Sprintf("schema: no node found with $id %q", e.SchemaID)
}
