package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewNumber handles minimum/maximum/exclusiveMinimum/exclusiveMaximum/
// multipleOf failures.
func NewNumber() Parser {
	return base{
		category: exception.CategoryNumber,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The numeric value at %s is outside the range this schema allows. %s", l.Pointer, l.Message)
		},
	}
}
