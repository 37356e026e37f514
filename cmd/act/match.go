package main

import (
	"fmt"

	"github.com/franz/codec-toolbox/internal/util"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match PATH...",
	Short: "Match file paths to registered codecs by extension",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	for _, path := range args {
		c, err := registry.MatchExtension(path)
		if err != nil {
			return err
		}
		if c == nil {
			util.WarnLog("no codec registered for %s", path)
			continue
		}
		fmt.Printf("%s: %s\n", path, c)
	}

	return nil
}
