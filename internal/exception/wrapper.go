package exception

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/rdapconformance/rdapcv/internal/schema"
)

// RunValidationWrapperPass emits a generic wrapper Result for every named
// validation that governs pointer and that also declares a
// parentValidationCode. This mirrors the original validator: alongside
// the specific leaf failure (bad pattern, wrong type, ...) every schema
// wrapped in a named anyOf/oneOf alternative ("nic.xx IP address
// validation", say) also gets a generic "does not pass X validation"
// result, so a reader sees both the precise cause and which named rule it
// broke.
func RunValidationWrapperPass(tree *schema.Tree, pointer, value string, acc *results.Accumulator) {
	for _, vn := range tree.FindValidationNodes(pointer) {
		code, ok := vn.ParentValidationCode()
		if !ok {
			continue
		}
		codeInt, ok := toInt(code)
		if !ok {
			continue
		}
		acc.Add(results.Result{
			Code:  codeInt,
			Value: pointer + ":" + value,
			Message: fmt.Sprintf(
				"The value for the JSON name value does not pass %s validation.",
				vn.Name,
			),
		})
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
