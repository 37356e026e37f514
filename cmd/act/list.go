package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered codecs",
	Long: `List all registered codecs with their extensions and the number of
encoder and decoder commands each one carries.

With --verbose, every command pattern is printed in priority order.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	codecs, err := registry.ListCodecs()
	if err != nil {
		return fmt.Errorf("failed to list codecs: %w", err)
	}

	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Name < codecs[j].Name
	})

	for _, c := range codecs {
		exts, err := c.Extensions()
		if err != nil {
			return err
		}
		encoders, err := c.Encoders()
		if err != nil {
			return err
		}
		decoders, err := c.Decoders()
		if err != nil {
			return err
		}

		fmt.Printf("%-8s %s\n", c.Name, c.Description)
		fmt.Printf("         extensions: %s\n", strings.Join(exts, ", "))
		fmt.Printf("         encoders: %d  decoders: %d\n", len(encoders), len(decoders))

		if verbose {
			for _, t := range encoders {
				fmt.Printf("         encode: %s\n", t)
			}
			for _, t := range decoders {
				fmt.Printf("         decode: %s\n", t)
			}
		}
	}

	return nil
}
