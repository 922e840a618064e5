package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewEnum handles "enum" failures - the instance value is not one of the
// schema's fixed allowed values.
func NewEnum() Parser {
	return base{
		category: exception.CategoryEnum,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s does not appear in the enumerated list of allowed values.", l.Pointer)
		},
	}
}
