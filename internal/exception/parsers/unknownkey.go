package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewUnknownKey handles additionalProperties/unevaluatedProperties
// failures - a JSON member present that the governing schema does not
// declare and does not allow.
func NewUnknownKey() Parser {
	return base{
		category: exception.CategoryUnknownKey,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The name %s is not a valid member for this object according to RFC 9083.", l.Pointer)
		},
	}
}
