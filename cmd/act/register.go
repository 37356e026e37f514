package main

import (
	"fmt"

	"github.com/franz/codec-toolbox/internal/util"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register codecs, extensions, and command patterns",
	Long: `Register a codec, claim a file extension for it, or add a ranked
encoder/decoder command pattern.

Command patterns are whitespace-tokenized and must contain the FILE and
OUTFILE placeholders exactly once each. Pass the pattern as a single
quoted argument so its dashes are not parsed as act flags:

  act register encoder mp3 --priority 5 'lame --quiet -b 320 FILE OUTFILE'

No shell expansion or quoting is applied when patterns run.`,
}

var registerCodecCmd = &cobra.Command{
	Use:   "codec NAME [DESCRIPTION]",
	Short: "Register a new codec",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runRegisterCodec,
}

var registerExtensionCmd = &cobra.Command{
	Use:   "extension CODEC EXT",
	Short: "Claim a file extension for a codec",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegisterExtension,
}

var registerEncoderCmd = &cobra.Command{
	Use:   "encoder CODEC PATTERN",
	Short: "Add an encoder command pattern to a codec (quote the pattern)",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegisterCommand,
}

var registerDecoderCmd = &cobra.Command{
	Use:   "decoder CODEC PATTERN",
	Short: "Add a decoder command pattern to a codec (quote the pattern)",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegisterCommand,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.AddCommand(registerCodecCmd)
	registerCmd.AddCommand(registerExtensionCmd)
	registerCmd.AddCommand(registerEncoderCmd)
	registerCmd.AddCommand(registerDecoderCmd)

	registerEncoderCmd.Flags().IntP("priority", "p", 0, "command priority (higher is preferred)")
	registerDecoderCmd.Flags().IntP("priority", "p", 0, "command priority (higher is preferred)")
}

func runRegisterCodec(cmd *cobra.Command, args []string) error {
	name := args[0]
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	c, err := registry.RegisterCodec(name, description)
	if err != nil {
		return err
	}

	util.SuccessLog("registered codec %s", c.Name)
	return nil
}

func runRegisterExtension(cmd *cobra.Command, args []string) error {
	name, ext := args[0], args[1]

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	c, err := registry.GetCodec(name)
	if err != nil {
		return err
	}
	if err := c.RegisterExtension(ext); err != nil {
		return err
	}

	util.SuccessLog("registered extension %s for codec %s", ext, c.Name)
	return nil
}

func runRegisterCommand(cmd *cobra.Command, args []string) error {
	name, pattern := args[0], args[1]
	priority, _ := cmd.Flags().GetInt("priority")

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	c, err := registry.GetCodec(name)
	if err != nil {
		return err
	}

	if cmd.Name() == "encoder" {
		err = c.RegisterEncoder(pattern, priority)
	} else {
		err = c.RegisterDecoder(pattern, priority)
	}
	if err != nil {
		return err
	}

	util.SuccessLog("registered %s for codec %s (priority %d): %s", cmd.Name(), c.Name, priority, pattern)
	return nil
}
