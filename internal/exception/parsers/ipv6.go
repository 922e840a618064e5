package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewIPv6 handles format:"ipv6" failures.
func NewIPv6() Parser {
	return base{
		category: exception.CategoryIPv6,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s is not a syntactically valid IPv6 address.", l.Pointer)
		},
	}
}
