package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewHostnameInURI handles format:"hostname" failures against a member
// that holds a URI's host component (e.g. a links/0/href authority).
func NewHostnameInURI() Parser {
	return base{
		category: exception.CategoryHostnameInURI,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The host component of the URI at %s is not a syntactically valid hostname.", l.Pointer)
		},
	}
}
