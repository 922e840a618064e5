package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewComplexType handles anyOf/oneOf/allOf/not failures that are not
// resolvable to a single more specific leaf - a union type where the
// instance matched none (or, for "not", matched the excluded) alternative.
func NewComplexType() Parser {
	return base{
		category: exception.CategoryComplexType,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s does not match any of the alternative schemas this member permits.", l.Pointer)
		},
	}
}
