package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewIDNHostname handles format:"idn-hostname" failures - a hostname
// member that is not a valid internationalized domain name.
func NewIDNHostname() Parser {
	return base{
		category: exception.CategoryIDNHostname,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s is not a syntactically valid internationalized hostname.", l.Pointer)
		},
	}
}
