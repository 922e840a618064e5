package schema

import (
	"fmt"
	"strconv"

	"github.com/rdapconformance/rdapcv/internal/jsonpointer"
	"github.com/rdapconformance/rdapcv/internal/validator"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Tree is a fully-built, navigable schema graph with every node's
// non-standard annotation keywords resolved. It is built once per compiled
// root schema and is read-only afterwards, so a *Tree is safe for
// concurrent use by multiple validation runs.
type Tree struct {
	Root Node

	byID map[string][]Node
	all  []Node
}

// New builds a Tree by walking the schema compiled under rootID, using raw
// (the parsed JSON of every registered schema resource, keyed by resource
// id) to recover the errorCode / validationName / duplicateKeys /
// parentValidationCode / structureInvalid annotations that the compiled
// graph discards.
func New(rootID string, v validator.Validator, raw map[string]map[string]any) (*Tree, error) {
	sp, ok := v.(validator.SchemaProvider)
	if !ok {
		return nil, &BuildError{ResourceID: rootID, Reason: "validator does not expose its compiled schema graph"}
	}
	s := sp.Schema()
	if s == nil {
		return nil, &BuildError{ResourceID: rootID, Reason: "compiled schema is nil"}
	}

	t := &Tree{byID: make(map[string][]Node)}
	rawRoot := newRawCursor(rootID, raw)
	t.Root = t.build(s, rawRoot, nil, "", make(map[string]bool))
	if t.Root == nil {
		return nil, &BuildError{ResourceID: rootID, Reason: "tree construction produced no root node"}
	}
	return t, nil
}

// vcardArrayException is the ICANN RDAP profile's one long-standing
// self-referential schema: a vCard's "vcardArray" property recurses into a
// structure that eventually contains another vcardArray. It is excluded by
// name as a fast path; buildShouldStop additionally covers any other
// unnamed cycle the schema bundle introduces (see SPEC_FULL.md 9(c)).
const vcardArrayException = "vcardArray"

func buildShouldStop(propertyName string, rawID string, location string, stack map[string]bool) bool {
	if propertyName == vcardArrayException {
		return true
	}
	if rawID != "" {
		return false
	}
	return stack[location]
}

func (t *Tree) register(n Node) {
	t.all = append(t.all, n)
	if id := n.SchemaID(); id != "" {
		t.byID[id] = append(t.byID[id], n)
	}
}

func (t *Tree) build(s *jsonschema.Schema, raw *rawCursor, parent Node, propertyName string, stack map[string]bool) Node {
	if s == nil {
		return nil
	}

	loc := schemaLocation(s)
	if loc == "" {
		loc = fmt.Sprintf("%p", s)
	}
	rawID := raw.id()

	if ref := schemaRef(s); ref != nil {
		h := header{parent: parent, propertyName: propertyName, schemaID: rawID, annotations: raw.annotations(), schema: s}
		node := &ReferenceNode{header: h}
		t.register(node)

		if buildShouldStop(propertyName, rawID, loc, stack) {
			return node
		}
		stack[loc] = true
		node.Target = t.build(ref, raw.deref(), node, "", stack)
		delete(stack, loc)
		return node
	}

	if anyOf := schemaAnyOf(s); len(anyOf) > 0 {
		return t.buildCombined(s, raw, parent, propertyName, stack, CombinedAnyOf, "anyOf", anyOf, loc, rawID)
	}
	if oneOf := schemaOneOf(s); len(oneOf) > 0 {
		return t.buildCombined(s, raw, parent, propertyName, stack, CombinedOneOf, "oneOf", oneOf, loc, rawID)
	}
	if allOf := schemaAllOf(s); len(allOf) > 0 {
		return t.buildCombined(s, raw, parent, propertyName, stack, CombinedAllOf, "allOf", allOf, loc, rawID)
	}

	if props := schemaProperties(s); len(props) > 0 {
		h := header{parent: parent, propertyName: propertyName, schemaID: rawID, annotations: raw.annotations(), schema: s}
		node := &ObjectNode{header: h, Properties: make(map[string]Node, len(props))}
		t.register(node)

		if buildShouldStop(propertyName, rawID, loc, stack) {
			return node
		}
		stack[loc] = true
		for name, childSchema := range props {
			childRaw := raw.property(name)
			if childRaw != nil && childRaw.isRef() {
				ref := t.build(schemaRef(childSchema), childRaw.deref(), node, name, stack)
				refHeader := header{parent: node, propertyName: name, schemaID: childRaw.id(), annotations: childRaw.annotations(), schema: childSchema}
				refNode := &ReferenceNode{header: refHeader, Target: ref}
				t.register(refNode)
				node.Properties[name] = refNode
				continue
			}
			node.Properties[name] = t.build(childSchema, childRaw, node, name, stack)
		}
		delete(stack, loc)
		return node
	}

	if items := schemaItems(s); items != nil {
		h := header{parent: parent, propertyName: propertyName, schemaID: rawID, annotations: raw.annotations(), schema: s}
		node := &ArrayNode{header: h}
		t.register(node)

		if buildShouldStop(propertyName, rawID, loc, stack) {
			return node
		}
		stack[loc] = true
		node.Items = t.build(items, raw.items(), node, "", stack)
		delete(stack, loc)
		return node
	}

	h := header{parent: parent, propertyName: propertyName, schemaID: rawID, annotations: raw.annotations(), schema: s}
	node := &SimpleNode{header: h}
	t.register(node)
	return node
}

func (t *Tree) buildCombined(s *jsonschema.Schema, raw *rawCursor, parent Node, propertyName string, stack map[string]bool, kw CombinedKeyword, kwName string, alts []*jsonschema.Schema, loc, rawID string) Node {
	h := header{parent: parent, propertyName: propertyName, schemaID: rawID, annotations: raw.annotations(), schema: s}
	node := &CombinedNode{header: h, Keyword: kw, Alternatives: make([]Node, 0, len(alts))}
	t.register(node)

	if buildShouldStop(propertyName, rawID, loc, stack) {
		return node
	}
	stack[loc] = true
	for i, alt := range alts {
		node.Alternatives = append(node.Alternatives, t.build(alt, raw.alternative(kwName, i), node, "", stack))
	}
	delete(stack, loc)
	return node
}

// FindChild returns the named property of n if n is an ObjectNode (or the
// resolved target of a ReferenceNode to one), dereferencing one hop of
// ReferenceNode on the result as ObjectNode.Child does.
func FindChild(n Node, name string) (Node, bool) {
	switch v := n.(type) {
	case *ObjectNode:
		return v.Child(name)
	case *ReferenceNode:
		return FindChild(v.Target, name)
	default:
		return nil, false
	}
}

// SearchBottomMostErrorCode walks from the node at pointer up through its
// ancestors, returning the nearest annotation named key. This mirrors
// SchemaNode.searchBottomMostErrorCode in the original validator: an
// exception parser asks for, e.g., "errorCode" and gets whichever enclosing
// schema (not necessarily the leaf) declared it.
func (t *Tree) SearchBottomMostErrorCode(pointer, key string) (any, error) {
	n, ok := t.FindAssociatedSchema(pointer)
	if !ok {
		return nil, &AnnotationNotFoundError{Annotation: key, Pointer: pointer}
	}
	for cur := n; cur != nil; cur = cur.Parent() {
		if v, ok := cur.Annotations()[key]; ok {
			return v, nil
		}
	}
	return nil, &AnnotationNotFoundError{Annotation: key, Pointer: pointer}
}

// FindAssociatedSchema walks the tree from the root following pointer's
// segments, skipping array-index segments (which select document elements,
// not schema children), and returns the node reached.
func (t *Tree) FindAssociatedSchema(pointer string) (Node, bool) {
	cur := t.Root
	for _, seg := range jsonpointer.Segments(pointer) {
		if _, err := strconv.Atoi(seg); err == nil {
			if arr, ok := unwrapArray(cur); ok {
				cur = arr.Items
				continue
			}
			return nil, false
		}
		child, ok := FindChild(cur, seg)
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

func unwrapArray(n Node) (*ArrayNode, bool) {
	switch v := n.(type) {
	case *ArrayNode:
		return v, true
	case *ReferenceNode:
		return unwrapArray(v.Target)
	default:
		return nil, false
	}
}

// ValidationNode pairs a schema node with the "validationName" annotation it
// carries, and exposes whether it also declares a parentValidationCode -
// the signal that a generic wrapper message should be emitted for it.
type ValidationNode struct {
	Node Node
	Name string
}

// HasParentValidationCode reports whether this node declares a
// parentValidationCode annotation alongside its validationName.
func (vn ValidationNode) HasParentValidationCode() bool {
	_, ok := vn.Node.Annotations()["parentValidationCode"]
	return ok
}

// ParentValidationCode returns this node's parentValidationCode annotation.
func (vn ValidationNode) ParentValidationCode() (any, bool) {
	v, ok := vn.Node.Annotations()["parentValidationCode"]
	return v, ok
}

// FindValidationNodes locates the schema at pointer, fans out over every
// combined-schema alternative reachable from it, and for each alternative
// branch walks up collecting every ancestor that declares a
// "validationName" annotation. This mirrors the original validator's
// wrapper-message pass: a leaf exception under an anyOf branch should also
// report which named validation (e.g. "nic.xx IP validation") it belongs to.
func (t *Tree) FindValidationNodes(pointer string) []ValidationNode {
	n, ok := t.FindAssociatedSchema(pointer)
	if !ok {
		return nil
	}

	var out []ValidationNode
	seen := make(map[Node]bool)
	for _, branch := range combinedLeaves(n) {
		for cur := branch; cur != nil; cur = cur.Parent() {
			if seen[cur] {
				continue
			}
			if name, ok := cur.Annotations()["validationName"].(string); ok {
				out = append(out, ValidationNode{Node: cur, Name: name})
				seen[cur] = true
			}
		}
	}
	return out
}

// combinedLeaves returns n itself if it is not a CombinedNode, or every
// alternative (recursively, for nested combined schemas) otherwise.
func combinedLeaves(n Node) []Node {
	cn, ok := n.(*CombinedNode)
	if !ok {
		return []Node{n}
	}
	var out []Node
	for _, alt := range cn.Alternatives {
		out = append(out, combinedLeaves(alt)...)
	}
	return out
}

// FindJSONPointersBySchemaID reconstructs every concrete JSON Pointer in doc
// that is governed by the schema identified by schemaID. It walks each
// matching node's ancestor chain back to the root collecting property names
// and array markers, then concretizes array markers by enumerating the
// actual indices present at that position in doc.
func (t *Tree) FindJSONPointersBySchemaID(schemaID string, doc any) ([]string, error) {
	nodes, ok := t.byID[schemaID]
	if !ok || len(nodes) == 0 {
		return nil, &SchemaIDNotFoundError{SchemaID: schemaID}
	}

	var out []string
	for _, n := range nodes {
		segments := pathToRoot(n)
		out = append(out, concretize(doc, segments)...)
	}
	return out, nil
}

// pathSegment is either a literal property name or an array-index marker.
type pathSegment struct {
	name    string
	isArray bool
}

func pathToRoot(n Node) []pathSegment {
	var rev []pathSegment
	for cur := n; cur != nil && cur.Parent() != nil; cur = cur.Parent() {
		if name := cur.PropertyName(); name != "" {
			rev = append(rev, pathSegment{name: name})
		} else if _, isArr := cur.Parent().(*ArrayNode); isArr {
			rev = append(rev, pathSegment{isArray: true})
		}
	}
	out := make([]pathSegment, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out
}

func concretize(doc any, segments []pathSegment) []string {
	return concretizeFrom(doc, segments, nil)
}

func concretizeFrom(cur any, segments []pathSegment, prefix []string) []string {
	if len(segments) == 0 {
		return []string{jsonpointer.Join(prefix...)}
	}
	seg := segments[0]
	rest := segments[1:]

	if seg.isArray {
		arr, ok := cur.([]any)
		if !ok {
			return nil
		}
		var out []string
		for i, elem := range arr {
			out = append(out, concretizeFrom(elem, rest, append(append([]string{}, prefix...), strconv.Itoa(i)))...)
		}
		return out
	}

	obj, ok := cur.(map[string]any)
	if !ok {
		return nil
	}
	next, ok := obj[seg.name]
	if !ok {
		return nil
	}
	return concretizeFrom(next, rest, append(append([]string{}, prefix...), seg.name))
}

// FindAllValuesOf unions the value of annotation key across every node
// reachable from n (via Children), honoring the same cycle guard used
// during construction so a recursive schema cannot loop forever.
func FindAllValuesOf(n Node, key string) []any {
	var out []any
	visited := make(map[Node]bool)
	var walk func(Node)
	walk = func(cur Node) {
		if cur == nil || visited[cur] {
			return
		}
		visited[cur] = true
		if v, ok := cur.Annotations()[key]; ok {
			out = append(out, v)
		}
		for _, c := range cur.Children() {
			walk(c)
		}
	}
	walk(n)
	return out
}
