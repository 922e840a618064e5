package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewMissingKey handles "required" failures - a JSON member the governing
// schema declares mandatory but the document omits.
func NewMissingKey() Parser {
	return base{
		category: exception.CategoryMissingKey,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The object at %s does not contain a required member. %s", l.Pointer, l.Message)
		},
	}
}
