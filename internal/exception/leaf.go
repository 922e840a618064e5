package exception

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Leaf is one terminal failure extracted from a *jsonschema.ValidationError
// tree - the equivalent of a leaf ValidationExceptionNode in the original
// validator. Every leaf belongs to exactly one Category.
type Leaf struct {
	Category Category
	// Pointer is the failing instance location, as a JSON Pointer
	// ("#/rdapConformance/0").
	Pointer string
	// Keyword is the JSON Schema keyword that failed ("pattern", "enum",
	// "required", "format", ...).
	Keyword string
	// Format is the format name when Keyword == "format" (e.g. "ipv4",
	// "idn-hostname", "date-time").
	Format string
	// Message is the library's own rendered error text, used verbatim by
	// parsers that have no structured payload to draw on (e.g. regex,
	// which needs the pattern that was violated).
	Message string
}

// Flatten walks err's output tree (via BasicOutput, the flat per-keyword
// output format jsonschema/v6 exposes for exactly this purpose) and
// classifies every leaf failure it finds. Non-leaf entries (those with
// their own nested Errors) are fan-out points, not failures in their own
// right, and are not returned - this mirrors the original validator, which
// only ever parses the leaf ValidationExceptionNodes and never the
// container ValidationException itself.
func Flatten(err *jsonschema.ValidationError) []Leaf {
	if err == nil {
		return nil
	}
	var out []Leaf
	var walk func(u jsonschema.OutputUnit)
	walk = func(u jsonschema.OutputUnit) {
		if len(u.Errors) == 0 {
			if leaf, ok := classify(u); ok {
				out = append(out, leaf)
			}
			return
		}
		for _, child := range u.Errors {
			walk(child)
		}
	}
	walk(*err.BasicOutput())
	return out
}

func classify(u jsonschema.OutputUnit) (Leaf, bool) {
	keyword := lastSegment(u.KeywordLocation)
	pointer := normalizePointer(u.InstanceLocation)

	leaf := Leaf{
		Pointer: pointer,
		Keyword: keyword,
	}
	if u.Error != nil {
		leaf.Message = u.Error.String()
	}

	switch {
	case keyword == "additionalProperties" || keyword == "unevaluatedProperties":
		leaf.Category = CategoryUnknownKey
	case keyword == "required":
		leaf.Category = CategoryMissingKey
	case keyword == "type":
		leaf.Category = CategoryBasicType
	case keyword == "enum":
		leaf.Category = CategoryEnum
	case keyword == "const":
		leaf.Category = CategoryConst
	case keyword == "contains":
		leaf.Category = CategoryContainsConst
	case keyword == "pattern" || keyword == "patternProperties":
		leaf.Category = CategoryRegex
	case keyword == "uniqueItems":
		leaf.Category = CategoryUniqueItems
	case keyword == "minimum" || keyword == "maximum" || keyword == "exclusiveMinimum" || keyword == "exclusiveMaximum" || keyword == "multipleOf":
		leaf.Category = CategoryNumber
	case isDependencyKeywordLocation(u.KeywordLocation):
		// dependentRequired/dependentSchemas report the specific dependent
		// property as the path's last segment ("/dependentRequired/keyData"),
		// not the keyword itself, so the keyword is recovered from the path
		// rather than from its last segment.
		leaf.Category = CategoryDependencies
	case keyword == "anyOf" || keyword == "oneOf" || keyword == "allOf" || keyword == "not":
		leaf.Category = CategoryComplexType
	case keyword == "format":
		leaf.Format = formatName(leaf.Message)
		leaf.Category = formatCategory(leaf.Format)
	default:
		return Leaf{}, false
	}
	return leaf, true
}

func lastSegment(pointerLike string) string {
	parts := strings.Split(strings.TrimSuffix(pointerLike, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// dependencyKeywords lists the keywords whose failing OutputUnit path
// names the specific dependent property after the keyword itself
// ("/dependentRequired/keyData"), rather than ending in the keyword.
var dependencyKeywords = []string{"dependentRequired", "dependencies", "dependentSchemas"}

func isDependencyKeywordLocation(keywordLocation string) bool {
	for _, kw := range dependencyKeywords {
		if strings.Contains(keywordLocation, "/"+kw+"/") || strings.HasSuffix(keywordLocation, "/"+kw) {
			return true
		}
	}
	return false
}

func normalizePointer(instanceLocation string) string {
	if instanceLocation == "" {
		return "#"
	}
	if strings.HasPrefix(instanceLocation, "#") {
		return instanceLocation
	}
	return "#" + instanceLocation
}

// formatName recovers the format keyword's value ("ipv4", "date-time", ...)
// from the library's rendered message, since OutputUnit does not carry the
// format string as a separate field. jsonschema/v6 messages for format
// failures consistently read along the lines of `value is not a valid
// "ipv4"` - the format name is the quoted token.
func formatName(message string) string {
	start := strings.Index(message, "\"")
	if start < 0 {
		return ""
	}
	end := strings.Index(message[start+1:], "\"")
	if end < 0 {
		return ""
	}
	return message[start+1 : start+1+end]
}

func formatCategory(format string) Category {
	switch format {
	case "ipv4":
		return CategoryIPv4
	case "ipv6":
		return CategoryIPv6
	case "idn-hostname":
		return CategoryIDNHostname
	case "hostname":
		return CategoryHostnameInURI
	case "date-time":
		return CategoryDatetime
	default:
		return CategoryComplexType
	}
}
