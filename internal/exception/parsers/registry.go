package parsers

import "github.com/rdapconformance/rdapcv/internal/exception"

// All returns the full, fixed registry of leaf parsers, in the fan-out
// order the engine runs them: every parser is tried against every leaf, and
// every leaf is handled by exactly one parser (the categories partition the
// taxonomy, so Matches never double-fires).
func All() []Parser {
	return []Parser{
		NewUnknownKey(),
		NewMissingKey(),
		NewBasicType(),
		NewEnum(),
		NewConst(),
		NewContainsConst(),
		NewRegex(),
		NewDatetime(),
		NewIPv4(),
		NewIPv6(),
		NewIDNHostname(),
		NewHostnameInURI(),
		NewUniqueItems(),
		NewNumber(),
		NewDependencies(),
		NewComplexType(),
	}
}

// Run dispatches every leaf to the parser whose category matches it.
// Leaves with no matching parser are silently skipped - CategoryUnknown
// leaves come from a keyword this engine does not recognize, which cannot
// happen given the fixed set of schema bundles this validator ships with.
func Run(ctx Context, leaves []exception.Leaf) {
	registry := All()
	for _, l := range leaves {
		for _, p := range registry {
			if p.Matches(l) {
				p.Parse(ctx, l)
				break
			}
		}
	}
}
