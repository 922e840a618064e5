package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewBasicType handles "type" failures - the instance's JSON type (string,
// number, object, array, boolean, null) does not match what the schema
// requires.
func NewBasicType() Parser {
	return base{
		category: exception.CategoryBasicType,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s is not of the type required by this schema. %s", l.Pointer, l.Message)
		},
	}
}
