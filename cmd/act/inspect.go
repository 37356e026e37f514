package main

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"
	"github.com/franz/codec-toolbox/internal/util"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect PATH",
	Short: "Show a file's matched codec, size, and embedded tags",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	c, err := registry.MatchExtension(path)
	if err != nil {
		return err
	}

	fmt.Printf("path:  %s\n", path)
	fmt.Printf("size:  %s\n", humanize.Bytes(uint64(info.Size())))
	if c != nil {
		fmt.Printf("codec: %s\n", c)
	} else {
		fmt.Printf("codec: unknown\n")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Not every audio file carries readable tags
		util.DebugLog("no readable tags in %s: %v", path, err)
		return nil
	}

	fmt.Printf("tags:  %s\n", m.Format())
	if m.Artist() != "" {
		fmt.Printf("       artist: %s\n", m.Artist())
	}
	if m.Album() != "" {
		fmt.Printf("       album:  %s\n", m.Album())
	}
	if m.Title() != "" {
		fmt.Printf("       title:  %s\n", m.Title())
	}
	if track, total := m.Track(); track > 0 {
		fmt.Printf("       track:  %d/%d\n", track, total)
	}

	return nil
}
