package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/settings"
)

func newSettingsCmd(flags *globalFlags) *cobra.Command {
	var retro bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved board settings",
		Long: `Show or change the saved settings of a board without starting it.

Examples:
  # Print the standard board's settings
  phonics settings show

  # Turn on the spoken word for the retro board
  phonics settings toggle playWord --retro

  # Hide the letter X
  phonics settings toggle x

  # Restore the defaults
  phonics settings reset
`,
	}
	cmd.PersistentFlags().BoolVar(&retro, "retro", false, "use the retro board's settings")
	variant := func() settings.Variant {
		if retro {
			return settings.Retro
		}
		return settings.Standard
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			e, err := openEnv(cmd.Context(), flags, variant())
			if err != nil {
				return err
			}
			defer e.Close()
			return printSettings(cmd.OutOrStdout(), e.settings.Current(), variant(), jsonOutput)
		},
	}
	show.Flags().Bool("json", false, "Output the stored record as JSON")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), flags, variant())
			if err != nil {
				return err
			}
			defer e.Close()
			if _, err := e.settings.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s settings to defaults\n", variant())
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <field|letter>",
		Short: "Flip an option or a letter's visibility",
		Long: `Flip one option, named by its key or label (playWord, "Play Word"), or
show/hide one letter (a-z).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), flags, variant())
			if err != nil {
				return err
			}
			defer e.Close()
			return runToggle(cmd, e.settings, variant(), args[0])
		},
	}

	cmd.AddCommand(show, reset, toggle)
	return cmd
}

func runToggle(cmd *cobra.Command, m *settings.Manager, variant settings.Variant, arg string) error {
	out := cmd.OutOrStdout()
	if entry, ok := alphabet.Lookup(arg); ok {
		s, err := m.ToggleLetter(cmd.Context(), arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", entry.Letter(), onOff(s.Enabled(entry.Letter()), "shown", "hidden"))
		return nil
	}

	field, ok := settings.ParseField(arg)
	if !ok || !offered(variant, field) {
		return fmt.Errorf("unknown option %q for the %s board (options: %s)", arg, variant, fieldNames(variant))
	}
	s, err := m.Toggle(cmd.Context(), field)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s\n", field.Label(), onOff(field.Get(s), "on", "off"))
	return nil
}

func printSettings(w io.Writer, s settings.Settings, variant settings.Variant, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "Settings (%s board):\n", variant)
	var group settings.Group
	for _, f := range settings.Fields(variant) {
		if f.Group() != group {
			group = f.Group()
			fmt.Fprintf(w, "\n  %s\n", group)
		}
		fmt.Fprintf(w, "    %-20s %s\n", f.Label(), onOff(f.Get(s), "on", "off"))
	}

	var hidden []string
	for _, l := range alphabet.Letters() {
		if !s.Enabled(l) {
			hidden = append(hidden, l)
		}
	}
	if len(hidden) == 0 {
		fmt.Fprintf(w, "\n  All letters visible\n")
	} else {
		fmt.Fprintf(w, "\n  Hidden letters: %s\n", strings.Join(hidden, " "))
	}
	return nil
}

func offered(variant settings.Variant, f settings.Field) bool {
	for _, o := range settings.Fields(variant) {
		if o == f {
			return true
		}
	}
	return false
}

func fieldNames(variant settings.Variant) string {
	fields := settings.Fields(variant)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return strings.Join(names, ", ")
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}
