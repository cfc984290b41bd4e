package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

type systemBackend struct{}

func (systemBackend) Write(text string) error {
	return clipboard.WriteAll(text)
}

type unsupported struct{}

func (unsupported) Write(string) error { return ErrUnsupported }

var errDisabled = errors.New("clipboard disabled")

type disabled struct{}

func (disabled) Write(string) error { return errDisabled }
