package schema

import (
	"strings"

	"github.com/rdapconformance/rdapcv/internal/jsonpointer"
)

// annotationKeys lists the non-standard JSON Schema keywords that ICANN's
// RDAP profile schemas attach to carry error codes and validation names.
// santhosh-tekuri/jsonschema/v6 compiles these away (they are not part of any
// supported draft's vocabulary), so recovering them means walking the raw
// schema resource JSON in parallel with the compiled graph.
var annotationKeys = []string{
	"errorCode",
	"validationName",
	"duplicateKeys",
	"parentValidationCode",
	"structureInvalid",
}

// rawCursor walks a raw (json.Unmarshal'd) schema resource document
// alongside the compiled schema graph, resolving $ref both within the same
// resource and across resources registered in docs.
type rawCursor struct {
	doc        map[string]any
	resourceID string
	docs       map[string]map[string]any
}

// newRawCursor starts a cursor at the root of the resource named rootID.
func newRawCursor(rootID string, docs map[string]map[string]any) *rawCursor {
	doc, ok := docs[rootID]
	if !ok {
		return nil
	}
	return &rawCursor{doc: doc, resourceID: rootID, docs: docs}
}

func (c *rawCursor) annotations() map[string]any {
	if c == nil || c.doc == nil {
		return nil
	}
	out := make(map[string]any, len(annotationKeys))
	for _, key := range annotationKeys {
		if v, ok := c.doc[key]; ok {
			out[key] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// id returns the resource-local $id of the current node, or "" if absent.
func (c *rawCursor) id() string {
	if c == nil || c.doc == nil {
		return ""
	}
	id, _ := c.doc["$id"].(string)
	return id
}

// property, items and alternative return the cursor for the child AS
// WRITTEN - if the child is itself a {"$ref": ...} node, the returned cursor
// still points at that reference node (so its own sibling annotation
// keywords, if any, are not lost). Callers that need to follow the
// reference call deref() explicitly, mirroring how the compiled graph keeps
// the referencing location distinct from the resolved target.
func (c *rawCursor) property(name string) *rawCursor {
	if c == nil || c.doc == nil {
		return nil
	}
	props, _ := c.doc["properties"].(map[string]any)
	if props == nil {
		return nil
	}
	child, _ := props[name].(map[string]any)
	if child == nil {
		return nil
	}
	return &rawCursor{doc: child, resourceID: c.resourceID, docs: c.docs}
}

func (c *rawCursor) items() *rawCursor {
	if c == nil || c.doc == nil {
		return nil
	}
	it, _ := c.doc["items"].(map[string]any)
	if it == nil {
		return nil
	}
	return &rawCursor{doc: it, resourceID: c.resourceID, docs: c.docs}
}

func (c *rawCursor) alternative(keyword string, idx int) *rawCursor {
	if c == nil || c.doc == nil {
		return nil
	}
	arr, _ := c.doc[keyword].([]any)
	if idx < 0 || idx >= len(arr) {
		return nil
	}
	child, _ := arr[idx].(map[string]any)
	if child == nil {
		return nil
	}
	return &rawCursor{doc: child, resourceID: c.resourceID, docs: c.docs}
}

// isRef reports whether the current node is itself a {"$ref": ...} node.
func (c *rawCursor) isRef() bool {
	if c == nil || c.doc == nil {
		return false
	}
	_, ok := c.doc["$ref"].(string)
	return ok
}

// deref follows this node's $ref to the cursor for its resolved target.
func (c *rawCursor) deref() *rawCursor {
	if c == nil || c.doc == nil {
		return nil
	}
	ref, ok := c.doc["$ref"].(string)
	if !ok {
		return c
	}
	return c.followRef(ref)
}

func (c *rawCursor) followRef(ref string) *rawCursor {
	resourceID, pointer := splitRef(ref, c.resourceID)
	doc, ok := c.docs[resourceID]
	if !ok {
		return nil
	}
	target, ok := jsonpointer.Query(any(doc), pointer)
	if !ok {
		return nil
	}
	m, ok := target.(map[string]any)
	if !ok {
		return nil
	}
	return &rawCursor{doc: m, resourceID: resourceID, docs: c.docs}
}

// splitRef splits a $ref value into the resource id of the document it
// points into and the JSON Pointer fragment within it. A same-document
// reference ("#/..." ) keeps currentResourceID; a cross-document reference
// ("http://.../other.json#/...") names the other resource explicitly.
func splitRef(ref, currentResourceID string) (resourceID, pointer string) {
	if strings.HasPrefix(ref, "#") {
		return currentResourceID, ref
	}
	if idx := strings.Index(ref, "#"); idx >= 0 {
		return ref[:idx], ref[idx:]
	}
	return ref, ""
}
