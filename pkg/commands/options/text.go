package options

import (
	"github.com/spf13/cobra"
)

// TextOptions carries the optional free-text fields of a new entry.
type TextOptions struct {
	Thoughts string
	Emotion  string
	Behavior string
}

func AddTextArgs(cmd *cobra.Command, o *TextOptions) {
	cmd.Flags().StringVar(&o.Thoughts, "thoughts", "",
		"What went through your head.")
	cmd.Flags().StringVar(&o.Emotion, "emotion", "",
		"What you felt in the moment.")
	cmd.Flags().StringVar(&o.Behavior, "behavior", "",
		"What you did about it.")
}
