package checks

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// requiredNotice is one of the fixed notices the Response Profile requires
// every domain/entity/nameserver top-level object to carry.
type requiredNotice struct {
	title string
	href  string
}

// noticesCheck is Response Profile 2.4/2.7.5: the "Status Codes" and
// "RDDS Inaccuracy Complaint Form" notices must be present with their
// prescribed href.
type noticesCheck struct {
	profile.AlwaysLaunch
	required []requiredNotice
}

func (noticesCheck) GroupName() string { return "ResponseProfile-2.4-2.7.5-Notices" }

func (c noticesCheck) DoValidate(ctx profile.CheckContext) bool {
	arr, _ := arrayAt(ctx.Document, "notices")

	ok := true
	for _, req := range c.required {
		if !hasNotice(arr, req) {
			ctx.Results.Add(results.Result{
				Code:  -20700,
				Value: "#/notices:" + req.title,
				Message: fmt.Sprintf(
					"The response does not contain a %q notice with href %q as required by the RDAP_Response_Profile_2_1.",
					req.title, req.href,
				),
			})
			ok = false
		}
	}
	return ok
}

func hasNotice(notices []any, req requiredNotice) bool {
	for _, n := range notices {
		title, _ := stringAt(n, "title")
		if title != req.title {
			continue
		}
		links, _ := arrayAt(n, "links")
		for _, l := range links {
			href, _ := stringAt(l, "href")
			if href == req.href {
				return true
			}
		}
	}
	return false
}

// NewNotices builds the Response Profile 2.4/2.7.5 required-notices check.
func NewNotices() profile.Check {
	return noticesCheck{
		required: []requiredNotice{
			{title: "Status Codes", href: "https://icann.org/epp"},
			{title: "RDDS Inaccuracy Complaint Form", href: "https://icann.org/wicf"},
		},
	}
}
