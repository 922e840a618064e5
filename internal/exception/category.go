// Package exception turns a *jsonschema.ValidationError tree into a flat
// list of leaf failures, each tagged with the taxonomy category that
// decides which parser in internal/exception/parsers owns it.
package exception

// Category is one of the sixteen leaf-failure kinds the validation engine
// recognizes. Every leaf in a validation error tree belongs to exactly one
// category, and every category is owned by exactly one parser.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryUnknownKey
	CategoryMissingKey
	CategoryBasicType
	CategoryEnum
	CategoryConst
	CategoryContainsConst
	CategoryRegex
	CategoryDatetime
	CategoryIPv4
	CategoryIPv6
	CategoryIDNHostname
	CategoryHostnameInURI
	CategoryUniqueItems
	CategoryNumber
	CategoryDependencies
	CategoryComplexType
)

func (c Category) String() string {
	switch c {
	case CategoryUnknownKey:
		return "unknownKey"
	case CategoryMissingKey:
		return "missingKey"
	case CategoryBasicType:
		return "basicType"
	case CategoryEnum:
		return "enum"
	case CategoryConst:
		return "const"
	case CategoryContainsConst:
		return "containsConst"
	case CategoryRegex:
		return "regex"
	case CategoryDatetime:
		return "datetime"
	case CategoryIPv4:
		return "ipv4"
	case CategoryIPv6:
		return "ipv6"
	case CategoryIDNHostname:
		return "idnHostname"
	case CategoryHostnameInURI:
		return "hostnameInUri"
	case CategoryUniqueItems:
		return "uniqueItems"
	case CategoryNumber:
		return "number"
	case CategoryDependencies:
		return "dependencies"
	case CategoryComplexType:
		return "complexType"
	default:
		return "unknown"
	}
}
