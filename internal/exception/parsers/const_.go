package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewConst handles "const" failures - the instance value does not equal
// the single fixed value the schema requires.
func NewConst() Parser {
	return base{
		category: exception.CategoryConst,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s does not equal the constant value required by this schema.", l.Pointer)
		},
	}
}
