package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarthakjha889/go-anagram-trie/internal/app"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <words...>",
		Short: "Print every dictionary word spelled with the given letters, longest first",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return errors.New("please enter one or more words")
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			ix, _, err := app.BuildIndex(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			hits := ix.Anagrams(query)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found %d anagrams:\n", len(hits))
			for _, hit := range hits {
				fmt.Fprintln(out, hit)
			}
			return nil
		},
	}
}
