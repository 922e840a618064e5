package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rdapconformance/rdapcv/internal/results"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonResult struct {
	Code    int    `json:"code"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type jsonOutput struct {
	RunID     string       `json:"runId"`
	QueryURI  string       `json:"queryUri,omitempty"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
	Duration  string       `json:"duration"`
	Passed    bool         `json:"passed"`
	Results   []jsonResult `json:"results"`
}

func (jr *JSONReporter) Write(w io.Writer, r *Report) error {
	out := jsonOutput{
		RunID:     r.RunID,
		QueryURI:  r.QueryURI,
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.EndTime.Sub(r.StartTime).String(),
		Passed:    r.Passed(),
		Results:   toJSONResults(r.Results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONResults(rs []results.Result) []jsonResult {
	out := make([]jsonResult, len(rs))
	for i, res := range rs {
		out[i] = jsonResult{Code: res.Code, Value: res.Value, Message: res.Message}
	}
	return out
}
