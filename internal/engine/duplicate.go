package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// frame tracks one level of object/array nesting while scanning tokens.
type frame struct {
	isObject  bool
	expectKey bool // only meaningful when isObject is true
	seen      map[string]bool
}

// findDuplicateKey walks a raw JSON document with encoding/json's low-level
// token reader and reports the first object key repeated within the same
// object - the Go equivalent of org.json.JSONObject's strict duplicate-key
// rejection (encoding/json silently keeps the last value for a repeated key
// instead of erroring).
func findDuplicateKey(data []byte) (key string, found bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var stack []*frame

	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	// consumeValue marks that a complete value has just been produced at
	// the current top-of-stack object, advancing it back to expecting the
	// next key.
	consumeValue := func() {
		if f := top(); f != nil && f.isObject {
			f.expectKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				stack = append(stack, &frame{isObject: true, expectKey: true, seen: make(map[string]bool)})
			case '[':
				stack = append(stack, &frame{isObject: false})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				consumeValue()
			}
		case string:
			f := top()
			if f != nil && f.isObject && f.expectKey {
				if f.seen[t] {
					return t, true
				}
				f.seen[t] = true
				f.expectKey = false
				continue
			}
			consumeValue()
		default:
			// number, bool, or nil scalar value.
			consumeValue()
		}
	}
}

// duplicateKeyMessage mirrors SchemaValidator.parseJsonException's fixed
// diagnostic for a structurally duplicated name/value pair.
const duplicateKeyMessage = "The name in the name/value pair of a link structure was found more than once."

func structureInvalidMessage(title string) string {
	return fmt.Sprintf("The %s structure is not syntactically valid.", title)
}
