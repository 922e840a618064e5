package checks

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// linksCheck is TIG 1.5/1.6: a top-level links array must contain at least
// one "self" relation link, every self link's href must match the query URI,
// and every member's non-empty value must equal the query URI.
type linksCheck struct {
	profile.AlwaysLaunch
}

func (linksCheck) GroupName() string { return "TIG-1.5-1.6-Links" }

func (linksCheck) DoValidate(ctx profile.CheckContext) bool {
	links, ok := arrayAt(ctx.Document, "links")
	if !ok {
		return true
	}

	uri := ctx.Config.QueryURI
	hasSelf := false
	allOK := true
	for i, l := range links {
		rel, _ := stringAt(l, "rel")
		value, _ := stringAt(l, "value")
		href, _ := stringAt(l, "href")

		if rel == "self" {
			hasSelf = true
			if uri != "" && href != uri {
				ctx.Results.Add(results.Result{
					Code:    -20600,
					Value:   fmt.Sprintf("#/links/%d/href:%s", i, href),
					Message: "The self link href does not match the canonical query URI as required by section 1.6 of the RDAP_Technical_Implementation_Guide_2_1.",
				})
				allOK = false
			}
		}
		if uri != "" && value != "" && value != uri {
			ctx.Results.Add(results.Result{
				Code:    -20601,
				Value:   fmt.Sprintf("#/links/%d/value:%s", i, value),
				Message: "The links member value does not match the enclosing object's query URI as required by section 1.5 of the RDAP_Technical_Implementation_Guide_2_1.",
			})
			allOK = false
		}
	}

	if !hasSelf {
		ctx.Results.Add(results.Result{
			Code:    -20602,
			Value:   "#/links:",
			Message: "The links array does not contain a self relation link as required by section 1.6 of the RDAP_Technical_Implementation_Guide_2_1.",
		})
		allOK = false
	}
	return allOK
}

// NewLinks builds the TIG 1.5/1.6 links check.
func NewLinks() profile.Check { return linksCheck{} }
