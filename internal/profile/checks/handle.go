package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// handlePattern is RDAP Response Profile 2.x's required handle shape:
// up to 80 word/underscore characters, a hyphen, then up to 8 word
// characters naming the registrar (the ROID suffix).
var handlePattern = regexp.MustCompile(`^(\w|_){1,80}-\w{1,8}$`)

// handleCheck validates the "handle" member of one top-level RDAP object
// class, grounded on original_source's HandleValidation.java: a malformed
// handle is errorCode; a well-formed handle whose ROID suffix is not
// registered in the EPP ROID registry is errorCode-1.
type handleCheck struct {
	profile.AlwaysLaunch
	name      string
	queryType rdap.QueryType
	errorCode int
}

func (c *handleCheck) GroupName() string { return c.name }

func (c *handleCheck) DoLaunch(ctx profile.CheckContext) bool {
	return ctx.QueryType == c.queryType
}

func (c *handleCheck) DoValidate(ctx profile.CheckContext) bool {
	handle, ok := stringAt(ctx.Document, "handle")
	if !ok {
		return true
	}

	if !handlePattern.MatchString(handle) {
		ctx.Results.Add(results.Result{
			Code:    c.errorCode,
			Value:   "#/handle:" + handle,
			Message: "The handle does not comply with the format defined in RFC 5730 (<(\\w|_){1,80}>-<\\w{1,8}>).",
		})
		return false
	}

	idx := strings.LastIndex(handle, "-")
	roid := handle[idx+1:]

	ds, ok := ctx.Datasets.Get("eppRoid")
	if ok && ds.IsInvalid(roid) {
		ctx.Results.Add(results.Result{
			Code:    c.errorCode - 1,
			Value:   "#/handle:" + handle,
			Message: fmt.Sprintf("The ROID %s is not registered in the EPP ROID registry.", roid),
		})
		return false
	}
	return true
}

// NewDomainHandle builds the domain object class's handle check
// (RDAP Response Profile 2.1).
func NewDomainHandle() profile.Check {
	return &handleCheck{name: "ResponseProfile-2.1-DomainHandle", queryType: rdap.QueryDomain, errorCode: -10200}
}

// NewNameserverHandle builds the nameserver object class's handle check
// (RDAP Response Profile 2.8).
func NewNameserverHandle() profile.Check {
	return &handleCheck{name: "ResponseProfile-2.8-NameserverHandle", queryType: rdap.QueryNameserver, errorCode: -11200}
}

// NewEntityHandle builds the entity object class's handle check
// (RDAP Response Profile 2.9).
func NewEntityHandle() profile.Check {
	return &handleCheck{name: "ResponseProfile-2.9-EntityHandle", queryType: rdap.QueryEntity, errorCode: -12200}
}
