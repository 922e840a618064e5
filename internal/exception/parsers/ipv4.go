package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewIPv4 handles format:"ipv4" failures.
func NewIPv4() Parser {
	return base{
		category: exception.CategoryIPv4,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s is not a syntactically valid IPv4 address.", l.Pointer)
		},
	}
}
