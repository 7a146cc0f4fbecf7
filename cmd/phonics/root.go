package main

import (
	"github.com/spf13/cobra"

	"phonicsboard/internal/settings"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	config    string
	db        string
	assets    string
	ephemeral bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "phonics",
		Short: "A phonics sound board for the terminal",
		Long: `Phonics shows the alphabet as a grid of buttons. Choosing a letter shows it
large and plays its phonics sound, and optionally speaks the letter name and
an example word.

Examples:
  # Standard board
  phonics

  # Retro board with its own settings
  phonics retro

  # Try it without touching saved settings
  phonics --ephemeral
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, flags, settings.Standard)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "config file (default $PHONICS_CONFIG or ~/.config/phonics/config.yaml)")
	pf.StringVar(&flags.db, "db", "", "settings database path (overrides config)")
	pf.StringVar(&flags.assets, "assets", "", "directory of letter sounds a.mp3 ... z.wav (overrides config)")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep settings in memory only")

	root.AddCommand(
		newRetroCmd(flags),
		newSettingsCmd(flags),
		newLettersCmd(flags),
	)
	return root
}

func newRetroCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "retro",
		Short: "Run the retro board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, flags, settings.Retro)
		},
	}
}
