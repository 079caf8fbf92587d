// Command anagrams finds the dictionary words that can be spelled with the
// letters of a phrase.
//
// Usage:
//
//	anagrams search [--dict DIR] <words...>
//	anagrams serve  [--dict DIR]
//
// Configuration is read from --config, CONFIG_PATH or ./config.yaml, then
// overridden by environment variables.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
