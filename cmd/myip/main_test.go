package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/log"
	"github.com/qdm12/myip/internal/models"
	"github.com/stretchr/testify/assert"
)

func Test_main(t *testing.T) {
	t.Parallel()

	const serverDelay = 5 * time.Second
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "203.0.113.5\n")
	})
	mux.HandleFunc("/unavailable", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(serverDelay)
		defer timer.Stop()
		select {
		case <-r.Context().Done():
		case <-timer.C:
			fmt.Fprint(w, "203.0.113.5\n")
		}
	})
	mux.HandleFunc("/truncated", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "12")
		fmt.Fprint(w, "203.0.")
		w.(http.Flusher).Flush()
		timer := time.NewTimer(serverDelay)
		defer timer.Stop()
		select {
		case <-r.Context().Done():
		case <-timer.C:
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	buildInfo := models.BuildInformation{
		Version: "v1.0.0",
		Commit:  "0123456789abcdef",
		Date:    "2024-01-01T00:00:00Z",
	}

	testCases := map[string]struct {
		args           []string
		exitCode       int
		stdout         string
		stderrContains []string
		maxDuration    time.Duration
	}{
		"success": {
			args:     []string{"myip", "-u", server.URL + "/ok", "--no-clipboard"},
			exitCode: exitSuccess,
			stdout:   "203.0.113.5\n",
			stderrContains: []string{
				"INFO", "public IP address: 203.0.113.5",
			},
		},
		"service unavailable": {
			args:     []string{"myip", "--url", server.URL + "/unavailable", "--no-clipboard"},
			exitCode: exitFailure,
			stderrContains: []string{
				"ERROR", "failed to retrieve public IP address from " + server.URL + "/unavailable",
				"503 Service Unavailable",
				"could not determine public IP address",
			},
		},
		"timeout": {
			args:        []string{"myip", "-u", server.URL + "/slow", "-t", "1", "--no-clipboard"},
			exitCode:    exitFailure,
			maxDuration: 3 * time.Second,
			stderrContains: []string{
				"could not determine public IP address",
			},
		},
		"truncated body": {
			args:        []string{"myip", "-u", server.URL + "/truncated", "-t", "1", "--no-clipboard"},
			exitCode:    exitFailure,
			maxDuration: 3 * time.Second,
			stderrContains: []string{
				"reading response body from",
				"could not determine public IP address",
			},
		},
		"truncated body with debug logging": {
			args: []string{"myip", "-u", server.URL + "/truncated", "-t", "1",
				"--no-clipboard", "--log-level", "debug"},
			exitCode:    exitFailure,
			maxDuration: 3 * time.Second,
			stderrContains: []string{
				"error reading body: ",
				"reading response body from",
				"could not determine public IP address",
			},
		},
		"invalid URL": {
			args:     []string{"myip", "-u", "ftp://" + server.Listener.Addr().String()},
			exitCode: exitFailure,
			stderrContains: []string{
				`settings validation: public ip settings: URL: URL is not valid: ` +
					`scheme "ftp" must be http or https`,
			},
		},
		"zero timeout": {
			args:     []string{"myip", "-t", "0"},
			exitCode: exitFailure,
			stderrContains: []string{
				"timeout flag value is not valid",
			},
		},
		"version": {
			args:     []string{"myip", "--version"},
			exitCode: exitSuccess,
			stdout:   "v1.0.0\n",
		},
		"help": {
			args:           []string{"myip", "--help"},
			exitCode:       exitSuccess,
			stderrContains: []string{"Usage: myip [flags]"},
		},
		"unknown flag": {
			args:           []string{"myip", "--bad"},
			exitCode:       exitUsage,
			stderrContains: []string{"unknown flag: --bad"},
		},
		"unexpected argument": {
			args:     []string{"myip", "extra"},
			exitCode: exitUsage,
			stderrContains: []string{
				"unexpected arguments: extra",
				"Usage: myip [flags]",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)
			logger := log.New(log.SetWriters(stderr))
			reader := reader.New(reader.Settings{})

			start := time.Now()
			exitCode := _main(context.Background(), reader, testCase.args,
				stdout, stderr, logger, buildInfo)
			elapsed := time.Since(start)

			assert.Equal(t, testCase.exitCode, exitCode)
			assert.Equal(t, testCase.stdout, stdout.String())
			for _, s := range testCase.stderrContains {
				assert.Contains(t, stderr.String(), s)
			}
			if testCase.maxDuration > 0 {
				assert.Less(t, elapsed, testCase.maxDuration)
			}
		})
	}
}
