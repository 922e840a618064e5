// Package rdap holds small RDAP protocol types shared across the engine and
// profile checks.
package rdap

import "strings"

// QueryType classifies which kind of RDAP query produced a response, per
// RFC 9082's URL patterns. Profile checks gate on this to decide whether
// they apply at all (DoLaunch).
type QueryType string

const (
	QueryHelp        QueryType = "help"
	QueryDomain      QueryType = "domain"
	QueryNameserver  QueryType = "nameserver"
	QueryNameservers QueryType = "nameservers"
	QueryEntity      QueryType = "entity"
	QueryIPNetwork   QueryType = "ip"
	QueryAutnum      QueryType = "autnum"
	QueryUnknown     QueryType = ""
)

// ClassifyURI derives a QueryType from the path segment of an RDAP query
// URI, e.g. "https://rdap.example/domain/example.com" -> QueryDomain.
func ClassifyURI(uri string) QueryType {
	path := uri
	if idx := strings.Index(path, "://"); idx >= 0 {
		path = path[idx+3:]
	}
	if idx := strings.Index(path, "/"); idx >= 0 {
		path = path[idx+1:]
	} else {
		return QueryUnknown
	}
	segment := path
	if idx := strings.Index(segment, "/"); idx >= 0 {
		segment = segment[:idx]
	}
	if idx := strings.Index(segment, "?"); idx >= 0 {
		segment = segment[:idx]
	}
	switch strings.ToLower(segment) {
	case "help":
		return QueryHelp
	case "domain", "domains":
		return QueryDomain
	case "nameserver":
		return QueryNameserver
	case "nameservers":
		return QueryNameservers
	case "entity", "entities":
		return QueryEntity
	case "ip":
		return QueryIPNetwork
	case "autnum":
		return QueryAutnum
	default:
		return QueryUnknown
	}
}
