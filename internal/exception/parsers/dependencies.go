package parsers

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/exception"
)

// NewDependencies handles dependentRequired/dependentSchemas failures - the
// presence of one member obligates another member that is missing.
func NewDependencies() Parser {
	return base{
		category: exception.CategoryDependencies,
		describe: func(l exception.Leaf) string {
			return fmt.Sprintf("The object at %s does not satisfy a member dependency required by this schema.", l.Pointer)
		},
	}
}
