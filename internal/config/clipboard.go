package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Clipboard struct {
	Enabled *bool
}

func (c *Clipboard) setDefaults() {
	c.Enabled = gosettings.DefaultPointer(c.Enabled, true)
}

func (c Clipboard) Validate() (err error) {
	return nil
}

func (c Clipboard) String() string {
	return c.toLinesNode().String()
}

func (c Clipboard) toLinesNode() *gotree.Node {
	return gotree.New("Clipboard copy: %s", gosettings.BoolToYesNo(c.Enabled))
}

func (c *Clipboard) read(r *reader.Reader, flags Flags) (err error) {
	c.Enabled, err = r.BoolPtr("CLIPBOARD_ENABLED")
	if err != nil {
		return err
	}

	if flags.NoClipboard {
		disabled := false
		c.Enabled = &disabled
	}

	return nil
}
