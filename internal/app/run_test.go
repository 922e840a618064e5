package app

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("run help", func(t *testing.T) {
		t.Parallel()
		err := Run(context.Background(), []string{"rdapcv", "--help"}, io.Discard, io.Discard, nil)
		require.NoError(t, err)
	})

	t.Run("run invalid command", func(t *testing.T) {
		t.Parallel()
		err := Run(context.Background(), []string{"rdapcv", "invalid-command"}, io.Discard, io.Discard, nil)
		require.Error(t, err)
	})

	t.Run("run missing config", func(t *testing.T) {
		t.Parallel()
		env := &mockEnvProvider{values: map[string]string{ConfigEnvVar: "/non/existent/rdapcv-config.yml"}}
		err := Run(context.Background(), []string{"rdapcv", "validate", "https://rdap.example/domain/example.com"}, io.Discard, io.Discard, env)
		require.Error(t, err)
	})

	t.Run("run conforming validation exits clean", func(t *testing.T) {
		t.Parallel()
		cfgPath := setupEngineFixture(t)
		responsePath := writeTempResponse(t, conformingDomainResponse)

		var stdout bytes.Buffer
		err := Run(context.Background(),
			[]string{"rdapcv", "--config", cfgPath, "validate", "--file", responsePath, "--query-uri", "https://rdap.example/domain/example.com"},
			&stdout, io.Discard, nil)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "PASS")
	})

	t.Run("run nonconforming validation exits with findings error", func(t *testing.T) {
		t.Parallel()
		cfgPath := setupEngineFixture(t)
		responsePath := writeTempResponse(t, `{}`)

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(),
			[]string{"rdapcv", "--config", cfgPath, "validate", "--file", responsePath, "--query-uri", "https://rdap.example/domain/example.com"},
			&stdout, &stderr, nil)
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "FAIL")
	})

	t.Run("run with nil env builds its own provider", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{"rdapcv", "--help"}, &stdout, &stderr, nil)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "rdapcv is a conformance validator")
	})

	t.Run("run cancelled while watching stops cleanly", func(t *testing.T) {
		t.Parallel()
		cfgPath := setupEngineFixture(t)
		responsePath := writeTempResponse(t, conformingDomainResponse)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- Run(ctx,
				[]string{"rdapcv", "--config", cfgPath, "validate", "--file", responsePath, "--watch"},
				io.Discard, io.Discard, nil)
		}()

		time.Sleep(200 * time.Millisecond)
		cancel()
		err := <-done
		require.NoError(t, err)
	})
}
