package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/ghwatch/github"
)

// requestFlags holds the per-request query flags shared by the subcommands.
type requestFlags struct {
	params  []string
	page    int
	perPage int
	list    bool
}

// addRequestFlags registers --param on cmd, plus --page and --per-page when
// list is set.
func addRequestFlags(cmd *cobra.Command, list bool) *requestFlags {
	f := &requestFlags{list: list}

	cmd.Flags().StringArrayVarP(&f.params, "param", "p", nil, "extra query parameter as key=value (repeatable)")
	if list {
		cmd.Flags().IntVar(&f.page, "page", 0, "page number to fetch")
		cmd.Flags().IntVar(&f.perPage, "per-page", 0, "results per page (max 100)")
	}

	return f
}

// Params converts the flags into request parameters.
func (f *requestFlags) Params() (github.Params, error) {
	params := github.Params{}
	for _, raw := range f.params {
		key, value, err := github.ParseParam(raw)
		if err != nil {
			return nil, err
		}
		params[key] = value
	}

	if !f.list {
		return params, nil
	}

	return params.WithList(github.ListOptions{Page: f.page, PerPage: f.perPage})
}
