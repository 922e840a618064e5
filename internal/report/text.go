package report

import (
	"fmt"
	"io"
	"strings"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour if
// colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *Report) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, tr.cs(colBoldWhite, "RDAP CONFORMANCE REPORT\n\n"))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Run ID: "), tr.cs(colWhite, r.RunID))
	if r.QueryURI != "" {
		fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Query:  "), tr.cs(colWhite, r.QueryURI))
	}
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Started:"), tr.cs(colWhite, r.StartTime.Format("15:04:05")))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Duration:"), tr.cs(colWhite, r.EndTime.Sub(r.StartTime).String()))
	fmt.Fprintf(w, "%s\n", divider)

	statusText := "PASS"
	statusCol := colGreen
	if !r.Passed() {
		statusText = "FAIL"
		statusCol = colRed
	}
	fmt.Fprintf(w, "%s %s\n", tr.cs(statusCol, "["+statusText+"]"), tr.cs(statusCol, fmt.Sprintf("%d finding(s)", len(r.Results))))

	if tr.Verbose || !r.Passed() {
		for _, res := range r.Results {
			fmt.Fprintf(w, "  %s %s\n", tr.cs(colRed, fmt.Sprintf("[%d]", res.Code)), tr.cs(colGrey, res.Value))
			fmt.Fprintf(w, "    %s\n", tr.cs(colWhite, res.Message))
		}
	}

	fmt.Fprintf(w, "%s\n", divider)
	summaryLabel := tr.cs(colBoldWhite, "Summary: ")
	statsColor := colBoldGreen
	if !r.Passed() {
		statsColor = colBoldRed
	}
	fmt.Fprintf(w, "%s%s\n", summaryLabel, tr.cs(statsColor, fmt.Sprintf("%d finding(s)", len(r.Results))))
	fmt.Fprintf(w, "%s\n", divider)

	return nil
}
