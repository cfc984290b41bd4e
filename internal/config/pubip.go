package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/myip/pkg/publicip/http"
)

type PubIP struct {
	URL     *string
	Timeout time.Duration
}

func (p *PubIP) setDefaults() {
	p.URL = gosettings.DefaultPointer(p.URL, http.DefaultURL)
	const defaultTimeout = 5 * time.Second
	p.Timeout = gosettings.DefaultComparable(p.Timeout, defaultTimeout)
}

var ErrTimeoutTooLow = errors.New("timeout is too low")

func (p PubIP) Validate() (err error) {
	err = http.ValidateURL(*p.URL)
	if err != nil {
		return fmt.Errorf("URL: %w", err)
	}

	const minTimeout = 10 * time.Millisecond
	if p.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, p.Timeout, minTimeout)
	}

	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP fetching")
	node.Appendf("URL: %s", *p.URL)
	node.Appendf("Timeout: %s", p.Timeout)
	return node
}

// ToHTTPOptions assumes the settings have been validated.
func (p PubIP) ToHTTPOptions() (options []http.Option) {
	return []http.Option{
		http.SetURL(*p.URL),
		http.SetTimeout(p.Timeout),
	}
}

var ErrTimeoutFlagNotValid = errors.New("timeout flag value is not valid")

func (p *PubIP) read(r *reader.Reader, flags Flags) (err error) {
	p.URL = r.Get("PUBLICIP_URL", reader.ForceLowercase(false))
	if flags.URL != nil {
		p.URL = flags.URL
	}

	p.Timeout, err = r.Duration("PUBLICIP_TIMEOUT")
	if err != nil {
		return err
	}
	if flags.TimeoutSeconds != nil {
		if *flags.TimeoutSeconds == 0 {
			return fmt.Errorf("%w: %d must be a positive number of seconds",
				ErrTimeoutFlagNotValid, *flags.TimeoutSeconds)
		}
		p.Timeout = time.Duration(*flags.TimeoutSeconds) * time.Second
	}

	return nil
}
