package checks

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// mutuallyExclusiveStatus lists the RDAP status combinations EPP defines
// as contradictory - an object cannot be simultaneously active and
// pending a terminal lifecycle transition.
var mutuallyExclusiveStatus = [][2]string{
	{"active", "pending delete"},
	{"active", "pending create"},
	{"pending create", "pending delete"},
}

// statusCheck is Response Profile 2.2/2.7.4: status values must be drawn
// from the IANA RDAP status registry. The mutually-exclusive-status rule
// (2.7.4) is new in the February 2024 profile revision and only applies
// when the run is configured against that profile.
type statusCheck struct {
	profile.AlwaysLaunch
}

func (statusCheck) GroupName() string { return "ResponseProfile-2.2-2.7.4-Status" }

func (statusCheck) DoValidate(ctx profile.CheckContext) bool {
	arr, ok := arrayAt(ctx.Document, "status")
	if !ok {
		return true
	}

	ds, hasDataset := ctx.Datasets.Get("rdapStatus")

	present := make(map[string]bool, len(arr))
	allOK := true
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			continue
		}
		present[s] = true
		if hasDataset && ds.IsInvalid(s) {
			ctx.Results.Add(results.Result{
				Code:    -21000,
				Value:   fmt.Sprintf("#/status/%d:%s", i, s),
				Message: fmt.Sprintf("The status value %q is not registered in the IANA RDAP Status registry.", s),
			})
			allOK = false
		}
	}

	if ctx.Config == nil || !ctx.Config.UseRDAPProfileFeb2024 {
		return allOK
	}

	for _, pair := range mutuallyExclusiveStatus {
		if present[pair[0]] && present[pair[1]] {
			ctx.Results.Add(results.Result{
				Code:    -21001,
				Value:   fmt.Sprintf("#/status:%s,%s", pair[0], pair[1]),
				Message: fmt.Sprintf("The status values %q and %q are mutually exclusive.", pair[0], pair[1]),
			})
			allOK = false
		}
	}
	return allOK
}

// NewStatus builds the Response Profile 2.2/2.7.4 status check.
func NewStatus() profile.Check { return statusCheck{} }
