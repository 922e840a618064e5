// Package schema builds a navigable tree over a compiled JSON Schema graph,
// annotated with the non-standard keywords (errorCode, validationName,
// duplicateKeys, ...) that the ICANN RDAP profiles attach to their schemas.
//
// santhosh-tekuri/jsonschema/v6 compiles a schema into a single flat
// *jsonschema.Schema struct rather than the discrete ObjectSchema /
// ArraySchema / ReferenceSchema / CombinedSchema hierarchy that
// everit-json-schema uses, so
// Kind is recovered here by inspecting which fields are populated rather than
// by a Go type switch.
package schema

import "github.com/santhosh-tekuri/jsonschema/v6"

// Kind identifies which of the five schema-node variants a Node represents.
type Kind int

const (
	KindSimple Kind = iota
	KindObject
	KindArray
	KindReference
	KindCombined
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindReference:
		return "reference"
	case KindCombined:
		return "combined"
	default:
		return "simple"
	}
}

// Node is a node in the validated schema tree. See package doc for the
// variant kinds.
type Node interface {
	// Kind identifies the variant.
	Kind() Kind
	// Parent returns the enclosing node, or nil for the root.
	Parent() Node
	// PropertyName is this node's property name within its parent object,
	// or "" for the root and for array/combined children.
	PropertyName() string
	// SchemaID is the raw schema's $id, if the schema resource declares one.
	SchemaID() string
	// Annotations returns this node's own annotation map (errorCode,
	// validationName, ...). It never includes ancestor annotations.
	Annotations() map[string]any
	// Children returns this node's direct children. Object nodes return
	// their property schemas; array nodes return a single-element slice
	// holding the items schema; combined nodes return their alternatives;
	// reference nodes return their resolved target (if any); simple nodes
	// return nil.
	Children() []Node
	// Schema is the compiled schema this node wraps.
	Schema() *jsonschema.Schema

	setParent(p Node)
}

// header is embedded by every concrete node and implements the
// parent/property/annotation/id bookkeeping common to all variants.
type header struct {
	parent       Node
	propertyName string
	schemaID     string
	annotations  map[string]any
	schema       *jsonschema.Schema
}

func (h *header) Parent() Node                { return h.parent }
func (h *header) PropertyName() string        { return h.propertyName }
func (h *header) SchemaID() string            { return h.schemaID }
func (h *header) Annotations() map[string]any { return h.annotations }
func (h *header) Schema() *jsonschema.Schema  { return h.schema }
func (h *header) setParent(p Node)            { h.parent = p }

// ContainsAnnotation reports whether n carries its own annotation named key
// (ancestor annotations are not considered - use SearchBottomMostErrorCode
// or Tree.SearchBottomMostErrorCode for the upward-walking lookup).
func ContainsAnnotation(n Node, key string) bool {
	_, ok := n.Annotations()[key]
	return ok
}

// ObjectNode represents a schema of type "object", exposing a named mapping
// of property schemas.
type ObjectNode struct {
	header
	Properties map[string]Node
}

func (n *ObjectNode) Kind() Kind { return KindObject }

func (n *ObjectNode) Children() []Node {
	out := make([]Node, 0, len(n.Properties))
	for _, c := range n.Properties {
		out = append(out, c)
	}
	return out
}

// Child returns the property schema named key, dereferencing one hop of
// ReferenceNode if the property is itself a $ref.
func (n *ObjectNode) Child(key string) (Node, bool) {
	c, ok := n.Properties[key]
	if !ok {
		return nil, false
	}
	if ref, isRef := c.(*ReferenceNode); isRef {
		return ref.Target, true
	}
	return c, true
}

// ArrayNode represents a schema of type "array", with a single items schema.
type ArrayNode struct {
	header
	Items Node
}

func (n *ArrayNode) Kind() Kind        { return KindArray }
func (n *ArrayNode) Children() []Node {
	if n.Items == nil {
		return nil
	}
	return []Node{n.Items}
}

// ReferenceNode forwards to a resolved target node. It remains in the tree
// in its own right (to preserve the parent chain of the referencing
// location) - Target is never itself a ReferenceNode.
type ReferenceNode struct {
	header
	Target Node
}

func (n *ReferenceNode) Kind() Kind { return KindReference }

// GetChild returns the resolved target of this reference.
func (n *ReferenceNode) GetChild() Node { return n.Target }

func (n *ReferenceNode) Children() []Node {
	if n.Target == nil {
		return nil
	}
	return []Node{n.Target}
}

// CombinedKeyword identifies which combining keyword produced a CombinedNode.
type CombinedKeyword int

const (
	CombinedAnyOf CombinedKeyword = iota
	CombinedOneOf
	CombinedAllOf
)

// CombinedNode represents a union/intersection schema (anyOf/oneOf/allOf).
type CombinedNode struct {
	header
	Keyword      CombinedKeyword
	Alternatives []Node
}

func (n *CombinedNode) Kind() Kind        { return KindCombined }
func (n *CombinedNode) Children() []Node  { return n.Alternatives }

// SimpleNode is a terminal node with no children.
type SimpleNode struct {
	header
}

func (n *SimpleNode) Kind() Kind       { return KindSimple }
func (n *SimpleNode) Children() []Node { return nil }
