package main

import (
	"fmt"

	"github.com/franz/codec-toolbox/internal/util"
	"github.com/spf13/cobra"
)

var unregisterCmd = &cobra.Command{
	Use:   "unregister NAME",
	Short: "Remove a codec and everything it owns",
	Long: `Remove a registered codec. Its claimed extensions and all of its
encoder and decoder command patterns are removed with it.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnregister,
}

func init() {
	rootCmd.AddCommand(unregisterCmd)
}

func runUnregister(cmd *cobra.Command, args []string) error {
	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	if err := registry.UnregisterCodec(args[0]); err != nil {
		return err
	}

	util.SuccessLog("unregistered codec %s", args[0])
	return nil
}
