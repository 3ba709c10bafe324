package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/term"
)

const asciiLogo = `
██████╗ ██████╗ ███╗   ███╗
██╔══██╗██╔══██╗████╗ ████║
██████╔╝██████╔╝██╔████╔██║
██╔═══╝ ██╔═══╝ ██║╚██╔╝██║
██║     ██║     ██║ ╚═╝ ██║
╚═╝     ╚═╝     ╚═╝     ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FocusDuration int
}

// isTerminal reports whether the prompt can be shown. It is a variable so
// tests can force the prompt off.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WithPromptConfig returns an Option that asks for first-run settings when
// no config file exists yet. It must come before WithViperConfig so the
// answers are saved with the defaults.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isTerminal() {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure ppm for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'ppm edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("60 minutes", 60).Selected(true),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.FocusDuration),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	if opts.FocusDuration > 0 {
		c.Session.DefaultDuration = time.Duration(opts.FocusDuration) * time.Minute
	}

	return nil
}
