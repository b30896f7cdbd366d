package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the free-text search flag.
type FilterOptions struct {
	Query string
}

func AddQueryArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Case-insensitive text to search for across all entry fields.")
}

// IDOptions toggles entry id display.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show entry ids (needed for delete).")
}
