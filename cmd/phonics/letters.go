package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/settings"
)

// letterInfo is one row of `phonics letters --json`.
type letterInfo struct {
	Letter  string `json:"letter"`
	Word    string `json:"word"`
	Speech  string `json:"speech"`
	Sound   string `json:"sound,omitempty"`
	Visible bool   `json:"visible"`
}

func newLettersCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "List the alphabet with words, sounds and visibility",
		Long: `List every letter with its example word, spoken name, the sound file found
for it in the assets directory and whether it is shown on the board.

Examples:
  phonics letters
  phonics letters --retro --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			retro, _ := cmd.Flags().GetBool("retro")
			variant := settings.Standard
			if retro {
				variant = settings.Retro
			}

			e, err := openEnv(cmd.Context(), flags, variant)
			if err != nil {
				return err
			}
			defer e.Close()

			rows := listLetters(e.settings.Current(), alphabet.SoundDir{Dir: e.cfg.Assets})
			out := cmd.OutOrStdout()
			if jsonOutput {
				return json.NewEncoder(out).Encode(rows)
			}
			for _, r := range rows {
				sound := r.Sound
				if sound == "" {
					sound = "-"
				}
				fmt.Fprintf(out, "%s  %-8s %-6s %-7s %s\n", r.Letter, r.Word, r.Speech, onOff(r.Visible, "shown", "hidden"), sound)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("retro", false, "use the retro board's settings")
	return cmd
}

func listLetters(s settings.Settings, catalog alphabet.SoundDir) []letterInfo {
	rows := make([]letterInfo, 0, 26)
	for _, e := range alphabet.All() {
		sound, _ := catalog.SoundFor(e.Letter())
		rows = append(rows, letterInfo{
			Letter:  e.Letter(),
			Word:    e.Phonics,
			Speech:  e.Speech,
			Sound:   sound,
			Visible: s.Enabled(e.Letter()),
		})
	}
	return rows
}
