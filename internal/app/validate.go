package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rdapconformance/rdapcv/internal/engine"
	"github.com/rdapconformance/rdapcv/internal/httpctx"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/report"
)

// engineAccessor returns the engine and logger built by the root command's
// PersistentPreRunE. It exists so NewValidateCmd can be wired up before
// those values exist.
type engineAccessor func() (*engine.Engine, *slog.Logger)

func NewValidateCmd(access engineAccessor) *cobra.Command {
	var verbose bool
	var filePath string
	var queryURIFlag string
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate [query-uri]",
		Short: "Validate an RDAP response against the schema set and response profile",
		Args:  cobra.MaximumNArgs(1),
		Example: `
VALIDATING A LIVE QUERY
  rdapcv validate https://rdap.example/domain/example.com

VALIDATING A CAPTURED RESPONSE
  rdapcv validate --file ./captured-response.json --query-uri https://rdap.example/domain/example.com

WATCHING A CAPTURED RESPONSE FOR CHANGES
  rdapcv validate --file ./captured-response.json --watch`,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every finding, even on a passing run")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Validate a previously captured response body instead of querying live")
	cmd.Flags().StringVar(&queryURIFlag, "query-uri", "", "Query URI the captured --file body answers (required with --file unless set in rdapcv-config.yml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch --file for changes and revalidate on each write")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		eng, logger := access()
		if eng == nil {
			return fmt.Errorf("validator engine was not initialised")
		}

		var queryURI string
		switch {
		case len(args) > 0:
			queryURI = args[0]
		case queryURIFlag != "":
			queryURI = queryURIFlag
		case eng.Config().QueryURI != "":
			queryURI = eng.Config().QueryURI
		}

		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour

		var reporter report.Reporter
		switch string(outputVal) {
		case "json":
			reporter = &report.JSONReporter{}
		default:
			reporter = &report.TextReporter{Verbose: verbose, UseColour: useColour}
		}

		runOnce := func() error {
			return runValidation(cmd, eng, logger, queryURI, filePath, reporter)
		}

		if watch {
			if filePath == "" {
				return fmt.Errorf("--watch requires --file")
			}
			return watchFile(cmd.Context(), filePath, runOnce)
		}

		return runOnce()
	}

	return cmd
}

// runValidation fetches or reads one RDAP response, validates it, and
// writes one report. Operational failures (bad input, unreachable server)
// are returned as ordinary errors; a run that completes with findings writes
// its report and then returns a *FindingsError carrying the finding count,
// so the process exits non-zero.
func runValidation(cmd *cobra.Command, eng *engine.Engine, logger *slog.Logger, queryURI, filePath string, reporter report.Reporter) error {
	start := time.Now()

	var body string
	var httpContext *httpctx.Context

	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("reading captured response %s: %w", filePath, err)
		}
		body = string(data)
	case queryURI != "":
		res, err := fetchQuery(cmd.Context(), queryURI)
		if err != nil {
			return err
		}
		body = res.Body
		httpContext = res.HTTP
	default:
		return fmt.Errorf("validate requires a query URI or --file")
	}

	qt := rdap.ClassifyURI(queryURI)

	acc, _ := eng.Validate(qt, body, httpContext)

	r := &report.Report{
		RunID:     uuid.NewString(),
		QueryURI:  queryURI,
		StartTime: start,
		EndTime:   time.Now(),
		Results:   acc.Results(),
	}

	if logger != nil {
		logger.Info("validation run complete", "runId", r.RunID, "findings", len(r.Results))
	}

	if err := reporter.Write(cmd.OutOrStdout(), r); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if len(r.Results) > 0 {
		return &FindingsError{Count: len(r.Results)}
	}
	return nil
}

// FindingsError signals a clean, reported validation failure: the run
// completed and produced a report, but that report found nonconformance,
// so the CLI should still exit non-zero.
type FindingsError struct {
	Count int
}

func (e *FindingsError) Error() string {
	return fmt.Sprintf("%d conformance finding(s)", e.Count)
}
