package main

import (
	"context"
	"os"
	"strings"

	"github.com/AD2708/multi-part/internal/logger"
	"github.com/AD2708/multi-part/internal/tui/theme"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▄▀█ █ █ █   ▀█▀ █ █▀█ ▄▀█ █▀█ ▀█▀"
	logoText2 = "█ ▀ █ █▄█ █▄▄  █  █ █▀▀ █▀█ █▀▄  █ "
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "multipart",
	Short: "Multi-step account creation form in the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

multipart walks you through account creation in three steps: identity,
account details and credentials. Each step is validated before you can
move forward; moving back never loses what you typed. The date of birth
is picked on a full month calendar with month and year navigation.`

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(initCmd)
}
