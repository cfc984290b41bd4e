// Package lookup runs a single public IP address lookup.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNoIPAddress = errors.New("could not determine public IP address")

type Runner struct {
	fetcher Fetcher
	copier  Copier
	stdout  io.Writer
	logger  Logger
}

func New(fetcher Fetcher, copier Copier, stdout io.Writer, logger Logger) *Runner {
	return &Runner{
		fetcher: fetcher,
		copier:  copier,
		stdout:  stdout,
		logger:  logger,
	}
}

// Run fetches the public IP address, copies it to the clipboard
// and writes it on its own line to stdout. Only the fetch can make
// it fail, in which case nothing is written to stdout.
func (r *Runner) Run(ctx context.Context) (err error) {
	publicIP, err := r.fetcher.IP(ctx)
	if err != nil {
		r.logger.Error("failed to retrieve public IP address from " +
			r.fetcher.URL() + ": " + err.Error())
		r.logger.Error(ErrNoIPAddress.Error())
		return fmt.Errorf("%w: %w", ErrNoIPAddress, err)
	}

	r.logger.Info("public IP address: " + publicIP)

	r.copier.Copy(publicIP)

	_, err = fmt.Fprintln(r.stdout, publicIP)
	if err != nil {
		return fmt.Errorf("writing to standard output: %w", err)
	}

	return nil
}
