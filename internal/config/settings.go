package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	PubIP     PubIP
	Clipboard Clipboard
	Logger    Logger
}

func (c *Config) SetDefaults() {
	c.PubIP.setDefaults()
	c.Clipboard.setDefaults()
	c.Logger.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"public ip": &c.PubIP,
		"clipboard": &c.Clipboard,
		"logger":    &c.Logger,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Clipboard.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	return node
}

// Read reads the settings from the environment through reader,
// and then overrides them with the command line flags given.
func (c *Config) Read(reader *reader.Reader, flags Flags) (err error) {
	err = c.PubIP.read(reader, flags)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Clipboard.read(reader, flags)
	if err != nil {
		return fmt.Errorf("reading clipboard settings: %w", err)
	}

	err = c.Logger.read(reader, flags)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
