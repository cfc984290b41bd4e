package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/qdm12/myip/pkg/publicip/http"
	"github.com/spf13/pflag"
)

// Flags holds the command line flags values. Pointer fields are nil
// when the corresponding flag is not set.
type Flags struct {
	URL            *string
	TimeoutSeconds *uint
	NoClipboard    bool
	LogLevel       *string
	Version        bool
}

var (
	ErrHelp                = pflag.ErrHelp
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)

// ParseFlags parses the command line arguments, excluding the program
// name. Usage and parsing errors are written to output.
// ErrHelp is returned if -h or --help is given.
func ParseFlags(arguments []string, output io.Writer) (flags Flags, err error) {
	flagSet := pflag.NewFlagSet("myip", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintln(output, "Fetch the public IP address, copy it to the clipboard and print it.")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Usage: myip [flags]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Flags:")
		fmt.Fprint(output, flagSet.FlagUsages())
	}

	url := flagSet.StringP("url", "u", http.DefaultURL, "Service URL for IP lookup")
	const defaultTimeoutSeconds = 5
	timeout := flagSet.UintP("timeout", "t", defaultTimeoutSeconds, "Request timeout in seconds")
	flagSet.BoolVar(&flags.NoClipboard, "no-clipboard", false, "Do not copy the IP address to the clipboard")
	logLevel := flagSet.String("log-level", "info", "Log level: debug, info, warning or error")
	flagSet.BoolVarP(&flags.Version, "version", "v", false, "Print the program version and exit")

	err = flagSet.Parse(arguments)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return flags, ErrHelp
		}
		return flags, err
	}

	if flagSet.NArg() > 0 {
		err = fmt.Errorf("%w: %s", ErrUnexpectedArguments,
			strings.Join(flagSet.Args(), " "))
		fmt.Fprintln(output, err)
		flagSet.Usage()
		return flags, err
	}

	if flagSet.Changed("url") {
		flags.URL = url
	}
	if flagSet.Changed("timeout") {
		flags.TimeoutSeconds = timeout
	}
	if flagSet.Changed("log-level") {
		flags.LogLevel = logLevel
	}

	return flags, nil
}
