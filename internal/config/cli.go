package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	Editor        string
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that were not given leave the loaded settings untouched.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.String("duration"),
			Editor:        ctx.String("editor"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		d, err := parseDuration(opts.Duration)
		if err != nil {
			return errInvalidDurationFormat.Fmt("--duration").Wrap(err)
		}

		c.Session.DefaultDuration = d
	}

	if opts.Editor != "" {
		c.Editor = opts.Editor
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	return nil
}
