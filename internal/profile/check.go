// Package profile implements the ICANN RDAP profile check framework: a
// fixed, ordered set of checks run after the schema pass (whether or not it
// produced findings), each
// gated on whether it applies to the current query/document at all.
package profile

import (
	"github.com/rdapconformance/rdapcv/internal/config"
	"github.com/rdapconformance/rdapcv/internal/dataset"
	"github.com/rdapconformance/rdapcv/internal/httpctx"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// CheckContext bundles everything a Check needs to decide whether it
// applies and to run its validation.
type CheckContext struct {
	Document  any
	Results   *results.Accumulator
	Config    *config.Config
	QueryType rdap.QueryType
	Datasets  dataset.Service
	// HTTP carries response headers and the redirect chain; nil when the
	// document was validated from a captured file with no HTTP context.
	HTTP *httpctx.Context
}

// Check is one coded profile rule.
type Check interface {
	// GroupName identifies the check for logging and registry ordering
	// diagnostics (e.g. "TIG-1.13", "ResponseProfile-2.2").
	GroupName() string
	// DoLaunch reports whether this check applies to ctx at all - most
	// checks are scoped to a query type or to the presence of a particular
	// member in the document.
	DoLaunch(ctx CheckContext) bool
	// DoValidate runs the check, appending any findings to ctx.Results. It
	// returns true iff no new results were appended, matching the
	// original validator's boolean-success convention.
	DoValidate(ctx CheckContext) bool
}

// AlwaysLaunch is embedded by checks that apply regardless of query type
// (e.g. TIG 1.13's CORS check, which governs every response).
type AlwaysLaunch struct{}

func (AlwaysLaunch) DoLaunch(CheckContext) bool { return true }

// Registry runs every registered Check, in registration order, against a
// CheckContext - the Go equivalent of the original validator's ordered
// profile-validation pass.
type Registry struct {
	checks []Check
}

// NewRegistry builds a Registry from an ordered list of checks.
func NewRegistry(checks ...Check) *Registry {
	return &Registry{checks: checks}
}

// Run executes every registered check whose DoLaunch applies, in
// registration order.
func (r *Registry) Run(ctx CheckContext) {
	for _, c := range r.checks {
		if c.DoLaunch(ctx) {
			c.DoValidate(ctx)
		}
	}
}
