package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewDatetime handles format:"date-time" failures - the instance string is
// not a valid RFC 3339 date-time, as RDAP requires for its timestamp
// members (events/0/eventDate, etc.).
func NewDatetime() Parser {
	return base{
		category: exception.CategoryDatetime,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The value at %s is not a valid date and time as required by RFC 3339.", l.Pointer)
		},
	}
}
