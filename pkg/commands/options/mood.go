// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/mood"
)

// MoodOptions captures the mood filter/selection flag.
type MoodOptions struct {
	MoodString string
}

// AddMoodArg wires the --mood flag on the provided command.
func AddMoodArg(cmd *cobra.Command, o *MoodOptions, usage string) {
	cmd.Flags().StringVarP(&o.MoodString, "mood", "m", "", usage)
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		keys := make([]string, 0, 5)
		for _, m := range mood.All() {
			keys = append(keys, m.Tone().Key)
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	})
}

// GetMood parses the flag; an unset flag resolves to mood.Any.
func (o *MoodOptions) GetMood() (mood.Mood, error) {
	return mood.Parse(o.MoodString)
}
