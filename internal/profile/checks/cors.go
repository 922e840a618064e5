package checks

import (
	"strings"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// corsCheck is TIG section 1.13: every response in the redirect chain that
// produced the final RDAP response must carry
// Access-Control-Allow-Origin: *. Grounded on original_source's
// Validation1Dot13.java, which walks HttpResponse.previousResponse() from
// the current response back to the first request made.
type corsCheck struct {
	profile.AlwaysLaunch
}

func (corsCheck) GroupName() string { return "TIG-1.13-CORS" }

func (corsCheck) DoValidate(ctx profile.CheckContext) bool {
	if ctx.HTTP == nil {
		return true
	}

	ok := true
	for _, resp := range ctx.HTTP.Chain() {
		if resp.Headers.Get("Access-Control-Allow-Origin") == "*" {
			continue
		}
		ok = false
		ctx.Results.Add(results.Result{
			Code:    -20500,
			Value:   headerSummary(resp.Headers),
			Message: "The HTTP header does not contain an Access-Control-Allow-Origin: * header as required by section 1.13 of the RDAP_Technical_Implementation_Guide_2_1.",
		})
	}
	return ok
}

// NewCORS builds the TIG 1.13 CORS check.
func NewCORS() profile.Check { return corsCheck{} }

func headerSummary(h map[string][]string) string {
	var parts []string
	for k, vs := range h {
		parts = append(parts, k+"="+strings.Join(vs, ","))
	}
	return strings.Join(parts, ", ")
}
