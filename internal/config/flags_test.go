package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseFlags(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		arguments  []string
		flags      Flags
		errWrapped error
		errMessage string
	}{
		"no argument": {},
		"short flags": {
			arguments: []string{"-u", "http://localhost/ip", "-t", "1", "-v"},
			flags: Flags{
				URL:            ptrTo("http://localhost/ip"),
				TimeoutSeconds: ptrTo(uint(1)),
				Version:        true,
			},
		},
		"long flags": {
			arguments: []string{
				"--url=https://icanhazip.com", "--timeout", "10",
				"--no-clipboard", "--log-level", "debug",
			},
			flags: Flags{
				URL:            ptrTo("https://icanhazip.com"),
				TimeoutSeconds: ptrTo(uint(10)),
				NoClipboard:    true,
				LogLevel:       ptrTo("debug"),
			},
		},
		"default values given explicitly": {
			arguments: []string{"--url", "https://api.ipify.org", "--timeout", "5"},
			flags: Flags{
				URL:            ptrTo("https://api.ipify.org"),
				TimeoutSeconds: ptrTo(uint(5)),
			},
		},
		"help": {
			arguments:  []string{"-h"},
			errWrapped: ErrHelp,
			errMessage: "pflag: help requested",
		},
		"unknown flag": {
			arguments:  []string{"--unknown"},
			errMessage: "unknown flag: --unknown",
		},
		"unexpected argument": {
			arguments:  []string{"-t", "3", "extra", "args"},
			errWrapped: ErrUnexpectedArguments,
			errMessage: "unexpected arguments: extra args",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			output := bytes.NewBuffer(nil)

			flags, err := ParseFlags(testCase.arguments, output)

			if testCase.errMessage != "" {
				require.Error(t, err)
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.flags, flags)
			assert.Empty(t, output.String())
		})
	}
}

func Test_ParseFlags_usage(t *testing.T) {
	t.Parallel()

	output := bytes.NewBuffer(nil)

	_, err := ParseFlags([]string{"--help"}, output)

	require.ErrorIs(t, err, ErrHelp)
	usage := output.String()
	assert.Contains(t, usage, "Usage: myip [flags]")
	assert.Contains(t, usage, `-u, --url string`)
	assert.Contains(t, usage, `(default "https://api.ipify.org")`)
	assert.Contains(t, usage, "-t, --timeout uint")
	assert.Contains(t, usage, "(default 5)")
}

func Test_ParseFlags_unexpectedArguments(t *testing.T) {
	t.Parallel()

	output := bytes.NewBuffer(nil)

	_, err := ParseFlags([]string{"extra"}, output)

	require.ErrorIs(t, err, ErrUnexpectedArguments)
	usage := output.String()
	assert.True(t, strings.HasPrefix(usage, "unexpected arguments: extra\n"))
	assert.Contains(t, usage, "Usage: myip [flags]")
}

func Test_ParseFlags_badTimeout(t *testing.T) {
	t.Parallel()

	output := bytes.NewBuffer(nil)

	_, err := ParseFlags([]string{"-t", "abc"}, output)

	assert.ErrorContains(t, err, `invalid argument "abc" for "-t, --timeout" flag`)
}
