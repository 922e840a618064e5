package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rdapconformance/rdapcv/internal/httpctx"
)

// fetchResult is the captured body and HTTP context for a single query,
// whether it came from a live RDAP request or a previously captured file.
type fetchResult struct {
	Body string
	HTTP *httpctx.Context
}

// fetchQuery performs an RDAP query against queryURI, following redirects
// itself rather than letting net/http's client do so silently, so every hop
// can be recorded as a linked httpctx.Context - the chain Validation1Dot13
// and its kin walk looking for a CORS header on every hop.
func fetchQuery(ctx context.Context, queryURI string) (*fetchResult, error) {
	client := &http.Client{
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	const maxRedirects = 10
	uri := queryURI
	var previous *httpctx.Context

	for i := 0; i < maxRedirects; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("building request for %s: %w", uri, err)
		}
		req.Header.Set("Accept", "application/rdap+json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("querying %s: %w", uri, err)
		}

		hop := &httpctx.Context{
			Headers:    resp.Header,
			StatusCode: resp.StatusCode,
			Previous:   previous,
		}

		if loc := resp.Header.Get("Location"); loc != "" && resp.StatusCode >= 300 && resp.StatusCode < 400 {
			resp.Body.Close()
			previous = hop
			uri = loc
			continue
		}

		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body from %s: %w", uri, err)
		}

		return &fetchResult{Body: string(data), HTTP: hop}, nil
	}

	return nil, fmt.Errorf("exceeded %d redirects fetching %s", maxRedirects, queryURI)
}
