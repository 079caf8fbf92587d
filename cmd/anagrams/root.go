package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarthakjha889/go-anagram-trie/internal/config"
)

type rootOptions struct {
	configPath  string
	dictDir     string
	skipMissing bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "anagrams",
		Short:         "Find the anagrams of a phrase in a word dictionary",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.dictDir, "dict", "", "dictionary directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&opts.skipMissing, "skip-missing", false, "ignore letters without a dictionary file")

	rootCmd.AddCommand(newSearchCmd(opts), newServeCmd(opts))
	return rootCmd
}

// load reads the configuration, letting command line flags win over both
// the file and the environment.
func (o *rootOptions) load() (*config.Config, error) {
	if o.dictDir != "" {
		if err := os.Setenv("DICTIONARY_DIR", o.dictDir); err != nil {
			return nil, fmt.Errorf("set dictionary dir: %w", err)
		}
	}
	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadPath(path)
	if err != nil {
		return nil, err
	}
	if o.skipMissing {
		cfg.Dictionary.SkipMissing = true
	}
	return cfg, nil
}
