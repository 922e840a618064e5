package checks

import (
	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// secureDNSCheck is Response Profile 2.6: if secureDNS.delegationSigned is
// true, at least one of dsData or keyData must be non-empty.
type secureDNSCheck struct{}

func (secureDNSCheck) GroupName() string { return "ResponseProfile-2.6-SecureDNS" }

func (secureDNSCheck) DoLaunch(ctx profile.CheckContext) bool {
	return ctx.QueryType == rdap.QueryDomain
}

func (secureDNSCheck) DoValidate(ctx profile.CheckContext) bool {
	sdns, ok := objectAt(ctx.Document, "secureDNS")
	if !ok {
		return true
	}

	signed, ok := boolAt(sdns, "delegationSigned")
	if !ok || !signed {
		return true
	}

	dsData, _ := arrayAt(sdns, "dsData")
	keyData, _ := arrayAt(sdns, "keyData")
	if len(dsData) > 0 || len(keyData) > 0 {
		return true
	}

	ctx.Results.Add(results.Result{
		Code:    -20900,
		Value:   "#/secureDNS:",
		Message: "The secureDNS member has delegationSigned true but neither dsData nor keyData is present, in violation of section 2.6 of the RDAP_Response_Profile_2_1.",
	})
	return false
}

// NewSecureDNS builds the Response Profile 2.6 secureDNS check.
func NewSecureDNS() profile.Check { return secureDNSCheck{} }
