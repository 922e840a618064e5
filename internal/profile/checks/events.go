package checks

import (
	"fmt"
	"time"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// eventsCheck is Response Profile 2.3.1: "registration" and "last changed"
// events must carry an RFC 3339 eventDate that is not in the future
// relative to the HTTP Date response header, when one was captured.
type eventsCheck struct {
	profile.AlwaysLaunch
}

func (eventsCheck) GroupName() string { return "ResponseProfile-2.3.1-Events" }

func (eventsCheck) DoValidate(ctx profile.CheckContext) bool {
	events, ok := arrayAt(ctx.Document, "events")
	if !ok {
		return true
	}

	now := time.Now()
	if ctx.HTTP != nil {
		if d := ctx.HTTP.Headers.Get("Date"); d != "" {
			if parsed, err := time.Parse(time.RFC1123, d); err == nil {
				now = parsed
			}
		}
	}

	allOK := true
	for i, e := range events {
		action, _ := stringAt(e, "eventAction")
		if action != "registration" && action != "last changed" {
			continue
		}
		dateStr, ok := stringAt(e, "eventDate")
		if !ok {
			continue
		}
		when, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			continue // malformed date is reported by the schema's format keyword
		}
		if when.After(now) {
			ctx.Results.Add(results.Result{
				Code:    -20800,
				Value:   fmt.Sprintf("#/events/%d/eventDate:%s", i, dateStr),
				Message: fmt.Sprintf("The %s event date is in the future, in violation of section 2.3.1 of the RDAP_Response_Profile_2_1.", action),
			})
			allOK = false
		}
	}
	return allOK
}

// NewEvents builds the Response Profile 2.3.1 events check.
func NewEvents() profile.Check { return eventsCheck{} }
