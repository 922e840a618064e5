// Package jsonpointer resolves RFC 6901 JSON Pointers against a document
// produced by encoding/json.Unmarshal into `any` (maps, slices, scalars).
package jsonpointer

import (
	"strconv"
	"strings"
)

// Segments splits a JSON Pointer into its unescaped reference tokens.
// "/a/b/3/c" -> ["a", "b", "3", "c"]. The root pointer "" and "#" both
// yield an empty slice.
func Segments(pointer string) []string {
	p := strings.TrimPrefix(pointer, "#")
	if p == "" {
		return nil
	}
	p = strings.TrimPrefix(p, "/")
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = unescape(part)
	}
	return parts
}

func unescape(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// Query resolves pointer against doc, returning the referenced value and
// whether it was found. Numeric segments index into arrays; all other
// segments index into maps.
func Query(doc any, pointer string) (any, bool) {
	cur := doc
	for _, seg := range Segments(pointer) {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, false
			}
			cur = v[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Join builds a JSON Pointer string from unescaped reference tokens.
func Join(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(escape(s))
	}
	if b.Len() == 0 {
		return "#"
	}
	return "#" + b.String()
}

func escape(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// ParentSchemaName returns the nearest non-numeric path segment before the
// final one, or "#" if none exists - used to name the enclosing object
// schema for a violation pointer.
func ParentSchemaName(pointer string) string {
	segs := Segments(pointer)
	for i := len(segs) - 2; i >= 0; i-- {
		if _, err := strconv.Atoi(segs[i]); err != nil {
			return segs[i]
		}
	}
	return "#"
}
