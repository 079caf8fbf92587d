package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sarthakjha889/go-anagram-trie/internal/app"
	"github.com/sarthakjha889/go-anagram-trie/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the dictionary and answer anagram queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ix, _, err := app.BuildIndex(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return server.New(cfg.Server, cfg.Search, ix, logger).Run(ctx)
		},
	}
}
