package checks

import (
	"fmt"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// queryURICheck is the Response Profile's query-URI/label-consistency
// family: a domain query made with an A-label (NR-LDH) URI must produce a
// response whose topmost object carries ldhName; one made with a U-label
// (internationalized) URI must carry unicodeName. Grounded on
// original_source's QueryValidationTest.java.
type queryURICheck struct {
	queryType rdap.QueryType
	errorCode int
	label     string
}

func (c *queryURICheck) GroupName() string { return "ResponseProfile-QueryURI-" + c.label }

func (c *queryURICheck) DoLaunch(ctx profile.CheckContext) bool {
	return ctx.QueryType == c.queryType
}

func (c *queryURICheck) DoValidate(ctx profile.CheckContext) bool {
	uri := ctx.Config.QueryURI
	if uri == "" {
		return true
	}

	if isALabelURI(uri) {
		if _, ok := stringAt(ctx.Document, "ldhName"); !ok {
			ctx.Results.Add(results.Result{
				Code:  c.errorCode,
				Value: "#:" + uri,
				Message: fmt.Sprintf(
					"The RDAP Query URI contains only A-label or NR-LDH labels, the topmost %s object does not contain a ldhName member. See section %s of the RDAP_Response_Profile_2_1.",
					c.label, c.section(),
				),
			})
			return false
		}
		return true
	}

	if _, ok := stringAt(ctx.Document, "unicodeName"); !ok {
		ctx.Results.Add(results.Result{
			Code:  c.errorCode - 1,
			Value: "#:" + uri,
			Message: fmt.Sprintf(
				"The RDAP Query URI contains at least one U-label, the topmost %s object does not contain a unicodeName member. See section %s of the RDAP_Response_Profile_2_1.",
				c.label, c.section(),
			),
		})
		return false
	}
	return true
}

func (c *queryURICheck) section() string {
	switch c.queryType {
	case rdap.QueryNameserver:
		return "2.8"
	default:
		return "2.1"
	}
}

// NewDomainQueryURI builds the domain object class's query-URI check.
func NewDomainQueryURI() profile.Check {
	return &queryURICheck{queryType: rdap.QueryDomain, errorCode: -10300, label: "domain"}
}

// NewNameserverQueryURI builds the nameserver object class's query-URI
// check.
func NewNameserverQueryURI() profile.Check {
	return &queryURICheck{queryType: rdap.QueryNameserver, errorCode: -11300, label: "nameserver"}
}

// isALabelURI reports whether uri's query label is a pure NR-LDH/A-label
// query: every rune is ASCII, including Punycode "xn--" forms. A URI is a
// U-label query only when it contains a literal Unicode character.
func isALabelURI(uri string) bool {
	return !containsNonASCII(uri)
}

func containsNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}
