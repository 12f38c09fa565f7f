package main

import (
	"fmt"
	"os"

	"github.com/AD2708/multi-part/internal/config"
	"github.com/AD2708/multi-part/internal/tui"
	"github.com/AD2708/multi-part/internal/tui/formwizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Run the account creation form",
	Long: `Run the account creation form.

The form collects your details over three steps:

  1. Identity     first name, last name, phone number, gender
  2. Account      PAN number, Aadhaar number, photo, date of birth
  3. Credentials  email and password

Validation runs when you move forward; going back is always allowed and
keeps everything you entered. After a successful submission a summary of
the created account is printed.

Configuration is loaded with the following precedence:
  Environment variables > Project config > Global config > Defaults

Project config: ./multipart.yml
Global config: ~/.config/multipart/multipart.yml`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	state, err := formwizard.Run(cfg)
	if err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	if !state.Submitted {
		fmt.Println("Form cancelled.")
		return nil
	}

	// Print the account summary now that the terminal is restored.
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	fmt.Println(tui.RenderMarkdown(formwizard.Summary(state, cfg.DateFormat), width))
	return nil
}
