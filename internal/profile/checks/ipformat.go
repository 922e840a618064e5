package checks

import (
	"fmt"
	"net"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
)

// ipFormatCheck validates IP address members against the IANA IPv4/IPv6
// special-purpose address registries - a syntactically valid address that
// falls in a reserved/special-purpose block (e.g. documentation ranges,
// multicast) is still flagged, grounded on original_source's
// customvalidator IpFormatValidator family and its backing dataset.
type ipFormatCheck struct {
	profile.AlwaysLaunch
	name      string
	queryType rdap.QueryType
	pointers  func(doc any) map[string]string // JSON pointer -> value
	errorCode int
}

func (c *ipFormatCheck) GroupName() string { return c.name }

func (c *ipFormatCheck) DoLaunch(ctx profile.CheckContext) bool {
	return ctx.QueryType == c.queryType
}

// datasetForAddress picks the special-purpose registry matching addr's own
// family: an IPv4 address is never flagged by checking it against the IPv6
// registry, and vice versa.
func datasetForAddress(addr net.IP) string {
	if addr.To4() != nil {
		return "ipv4SpecialRegistry"
	}
	return "ipv6SpecialRegistry"
}

func (c *ipFormatCheck) DoValidate(ctx profile.CheckContext) bool {
	ok2 := true
	for pointer, value := range c.pointers(ctx.Document) {
		addr := net.ParseIP(value)
		if addr == nil {
			// A malformed address is reported by the schema's own format
			// keyword failure, not by this check.
			continue
		}
		ds, ok := ctx.Datasets.Get(datasetForAddress(addr))
		if !ok {
			continue
		}
		if ds.IsInvalid(value) {
			continue
		}
		ctx.Results.Add(results.Result{
			Code:    c.errorCode,
			Value:   pointer + ":" + value,
			Message: fmt.Sprintf("The IP address %s is listed in the IANA special-purpose address registry and must not appear here.", value),
		})
		ok2 = false
	}
	return ok2
}

// NewIPNetworkAddressFormat builds the "ip network" object class's
// startAddress/endAddress check.
func NewIPNetworkAddressFormat() profile.Check {
	return &ipFormatCheck{
		name:      "ResponseProfile-IPNetwork-AddressFormat",
		queryType: rdap.QueryIPNetwork,
		errorCode: -13400,
		pointers: func(doc any) map[string]string {
			out := map[string]string{}
			if v, ok := stringAt(doc, "startAddress"); ok {
				out["#/startAddress"] = v
			}
			if v, ok := stringAt(doc, "endAddress"); ok {
				out["#/endAddress"] = v
			}
			return out
		},
	}
}

// NewNameserverIPAddressFormat builds the nameserver object class's
// ipAddresses.v4/v6 check.
func NewNameserverIPAddressFormat() profile.Check {
	return &ipFormatCheck{
		name:      "ResponseProfile-Nameserver-IPAddressFormat",
		queryType: rdap.QueryNameserver,
		errorCode: -11400,
		pointers: func(doc any) map[string]string {
			out := map[string]string{}
			addrs, ok := objectAt(doc, "ipAddresses")
			if !ok {
				return out
			}
			for _, family := range []string{"v4", "v6"} {
				arr, ok := addrs[family].([]any)
				if !ok {
					continue
				}
				for i, v := range arr {
					if s, ok := v.(string); ok {
						out[fmt.Sprintf("#/ipAddresses/%s/%d", family, i)] = s
					}
				}
			}
			return out
		},
	}
}
