package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapconformance/rdapcv/internal/results"
)

func TestTextReporter(t *testing.T) {
	t.Parallel()
	startTime := time.Now()
	endTime := startTime.Add(time.Second)

	r := &Report{
		RunID:     "11111111-1111-1111-1111-111111111111",
		QueryURI:  "https://rdap.example/domain/example.com",
		StartTime: startTime,
		EndTime:   endTime,
		Results: []results.Result{
			{Code: -10200, Value: "#/handle:bad", Message: "The handle does not comply with the format defined in RFC 5730."},
		},
	}

	t.Run("Concise Mode", func(t *testing.T) {
		t.Parallel()
		tr := &TextReporter{Verbose: false}
		var buf bytes.Buffer
		err := tr.Write(&buf, r)
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "[FAIL]")
		assert.Contains(t, output, "[-10200]")
		assert.Contains(t, output, "Summary: 1 finding(s)")
	})

	t.Run("Passing Run", func(t *testing.T) {
		t.Parallel()
		r2 := &Report{RunID: "r2", StartTime: startTime, EndTime: endTime}
		tr := &TextReporter{}
		var buf bytes.Buffer
		err := tr.Write(&buf, r2)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "[PASS]")
	})

	t.Run("Colour Mode", func(t *testing.T) {
		t.Parallel()
		tr := &TextReporter{UseColour: true}
		var buf bytes.Buffer
		err := tr.Write(&buf, r)
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "\033[31m[FAIL]\033[0m")
		assert.Contains(t, output, "\033[1;31m1 finding(s)\033[0m")
	})
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()
	startTime := time.Time{}
	endTime := startTime.Add(time.Second)

	r := &Report{
		RunID:     "run-1",
		QueryURI:  "https://rdap.example/domain/example.com",
		StartTime: startTime,
		EndTime:   endTime,
		Results: []results.Result{
			{Code: -20100, Value: "#:", Message: "missing rdapConformance"},
		},
	}

	tr := &JSONReporter{}
	var buf bytes.Buffer
	err := tr.Write(&buf, r)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"runId": "run-1"`)
	assert.Contains(t, output, `"duration": "1s"`)
	assert.Contains(t, output, `"passed": false`)
	assert.Contains(t, output, `"code": -20100`)
}

func TestJSONReporter_PassingRun(t *testing.T) {
	t.Parallel()
	r := &Report{RunID: "run-2"}
	tr := &JSONReporter{}
	var buf bytes.Buffer
	require.NoError(t, tr.Write(&buf, r))
	assert.Contains(t, buf.String(), `"passed": true`)
}
