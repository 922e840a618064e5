package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewRegex handles "pattern" failures - the instance string does not match
// the schema's required regular expression.
func NewRegex() Parser {
	return base{
		category: exception.CategoryRegex,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s does not match the pattern required by this schema. %s", l.Pointer, l.Message)
		},
	}
}
