// Package httpctx carries the HTTP-level facts a handful of profile checks
// need alongside the parsed RDAP document body - response headers and the
// redirect chain that produced the final response. It mirrors the original
// validator's HttpResponse<String>/previousResponse() chain, since Go's
// net/http.Response exposes the same information differently
// (Request.Response for the previous hop).
package httpctx

import "net/http"

// Context is one response in a redirect chain, oldest-first.
type Context struct {
	Headers    http.Header
	StatusCode int
	// Previous is the response that was redirected to produce this one, or
	// nil if this is the first request made.
	Previous *Context
}

// Chain returns every response from the first request made to this one,
// oldest first - the order Validation1Dot13 walks when checking every hop
// in a redirect chain for CORS headers.
func (c *Context) Chain() []*Context {
	if c == nil {
		return nil
	}
	var rev []*Context
	for cur := c; cur != nil; cur = cur.Previous {
		rev = append(rev, cur)
	}
	out := make([]*Context, len(rev))
	for i, r := range rev {
		out[len(rev)-1-i] = r
	}
	return out
}
