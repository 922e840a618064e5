package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewContainsConst handles "contains" failures - an array fails to contain
// any element equal to the schema's required value.
func NewContainsConst() Parser {
	return base{
		category: exception.CategoryContainsConst,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The array at %s does not contain the value required by this schema.", l.Pointer)
		},
	}
}
