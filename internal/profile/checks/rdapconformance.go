package checks

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// rdapConformanceCheck is TIG 1.1/1.2: every response must carry a
// top-level rdapConformance array, and every member of it must be a known
// RDAP extension identifier from the IANA RDAP extensions registry.
type rdapConformanceCheck struct {
	profile.AlwaysLaunch
}

func (rdapConformanceCheck) GroupName() string { return "TIG-1.1-1.2-RDAPConformance" }

func (rdapConformanceCheck) DoValidate(ctx profile.CheckContext) bool {
	arr, ok := arrayAt(ctx.Document, "rdapConformance")
	if !ok {
		ctx.Results.Add(results.Result{
			Code:    -20100,
			Value:   "#:",
			Message: "The response does not contain an rdapConformance member as required by sections 1.1 and 1.2 of the RDAP_Technical_Implementation_Guide_2_1.",
		})
		return false
	}

	ds, ok := ctx.Datasets.Get("rdapExtensions")
	if !ok {
		return true
	}

	allOK := true
	for i, v := range arr {
		id, ok := v.(string)
		if !ok {
			continue
		}
		if ds.IsInvalid(id) {
			ctx.Results.Add(results.Result{
				Code:    -20101,
				Value:   fmt.Sprintf("#/rdapConformance/%d:%s", i, id),
				Message: fmt.Sprintf("The rdapConformance identifier %q is not registered in the IANA RDAP Extensions registry.", id),
			})
			allOK = false
		}
	}
	return allOK
}

// NewRDAPConformance builds the TIG 1.1/1.2 check.
func NewRDAPConformance() profile.Check { return rdapConformanceCheck{} }
