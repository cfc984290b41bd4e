package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/qdm12/myip/internal/clipboard"
	"github.com/qdm12/myip/internal/config"
	"github.com/qdm12/myip/internal/httpclient"
	"github.com/qdm12/myip/internal/lookup"
	"github.com/qdm12/myip/internal/models"
	"github.com/qdm12/myip/pkg/publicip/http"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New(log.SetWriters(os.Stderr))

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	exitCode := _main(ctx, reader, os.Args, os.Stdout, os.Stderr, logger, buildInfo)
	stop()
	os.Exit(exitCode)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	stdout, stderr io.Writer, logger *log.Logger,
	buildInfo models.BuildInformation) (exitCode int) {
	flags, err := config.ParseFlags(args[1:], stderr)
	switch {
	case errors.Is(err, config.ErrHelp):
		return exitSuccess
	case err != nil:
		// the error and usage are already written to stderr
		return exitUsage
	case flags.Version:
		fmt.Fprintln(stdout, buildInfo.VersionString())
		return exitSuccess
	}

	settings, err := readSettings(reader, flags, logger)
	if err != nil {
		logger.Error(err.Error())
		return exitFailure
	}

	printSplash(buildInfo, logger)
	logger.Debug(settings.String())

	debug := *settings.Logger.Level == log.LevelDebug
	client := httpclient.New(settings.PubIP.Timeout, debug,
		logger.New(log.SetComponent("http")))
	defer client.CloseIdleConnections()

	httpOptions := append(settings.PubIP.ToHTTPOptions(),
		http.SetUserAgent(buildInfo.UserAgent()))
	fetcher, err := http.New(client, httpOptions...)
	if err != nil {
		logger.Error(fmt.Sprintf("creating public IP fetcher: %s", err))
		return exitFailure
	}

	clipboardWriter := clipboard.New(*settings.Clipboard.Enabled,
		logger.New(log.SetComponent("clipboard")))

	runner := lookup.New(fetcher, clipboardWriter, stdout, logger)
	err = runner.Run(ctx)
	if err != nil {
		if !errors.Is(err, lookup.ErrNoIPAddress) {
			logger.Error(err.Error())
		}
		return exitFailure
	}

	return exitSuccess
}

func readSettings(reader *reader.Reader, flags config.Flags, logger *log.Logger) (
	settings config.Config, err error) {
	err = settings.Read(reader, flags)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}
	settings.SetDefaults()

	logger.Patch(settings.Logger.ToOptions()...)

	err = settings.Validate()
	if err != nil {
		return settings, fmt.Errorf("settings validation: %w", err)
	}

	return settings, nil
}

func printSplash(buildInfo models.BuildInformation, logger *log.Logger) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "myip",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		logger.Debug(line)
	}
}
