package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewUniqueItems handles "uniqueItems" failures - an array the schema
// requires to hold distinct elements contains a duplicate.
func NewUniqueItems() Parser {
	return base{
		category: exception.CategoryUniqueItems,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The array at %s contains duplicate elements where uniqueness is required.", l.Pointer)
		},
	}
}
