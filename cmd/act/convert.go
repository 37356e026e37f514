package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/franz/codec-toolbox/internal/codec"
	"github.com/franz/codec-toolbox/internal/command"
	"github.com/franz/codec-toolbox/internal/util"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT OUTPUT",
	Short: "Transcode a file using the best available external tools",
	Long: `Transcode INPUT to OUTPUT. Both codecs are picked from the registry by
file extension. The source is decoded to an intermediate WAV file with
the best available decoder, then encoded to the target format with the
best available encoder. Converting from or to WAV skips the respective
step.

With --verbose the external tools' output is streamed line by line.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("failed to open codec registry: %w", err)
	}
	defer registry.Close()

	source, err := registry.MatchExtension(input)
	if err != nil {
		return err
	}
	if source == nil {
		return fmt.Errorf("no codec registered for %s", input)
	}

	target, err := registry.MatchExtension(output)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("no codec registered for %s", output)
	}

	if source.Name == target.Name {
		return fmt.Errorf("source and target are both %s, nothing to transcode", source.Name)
	}

	util.InfoLog("converting %s (%s) to %s (%s)", input, source.Name, output, target.Name)

	// Decode to an intermediate WAV unless the input already is one
	wavPath := input
	if source.Name != "wav" {
		decoder, err := source.BestDecoder()
		if err != nil {
			return err
		}

		if target.Name == "wav" {
			// Decode straight into the requested output
			return runTool(registry, decoder, "decoding with "+decoder.Executable(), input, output)
		}

		wavPath = filepath.Join(os.TempDir(), "act-"+uuid.NewString()+".wav")
		defer os.Remove(wavPath)

		if err := runTool(registry, decoder, "decoding with "+decoder.Executable(), input, wavPath); err != nil {
			return err
		}
	}

	encoder, err := target.BestEncoder()
	if err != nil {
		return err
	}
	return runTool(registry, encoder, "encoding with "+encoder.Executable(), wavPath, output)
}

// runTool executes one template with either streamed output (verbose)
// or a spinner while the tool works. A non-zero exit becomes the
// command's error here: the registry core reports it as data, the CLI
// decides it failed.
func runTool(registry *codec.Registry, tmpl *command.Template, description, input, output string) error {
	var stdout, stderr io.Writer
	verbose := viper.GetBool("verbose")
	if verbose {
		stdout = os.Stdout
		stderr = os.Stderr
	}

	var bar *progressbar.ProgressBar
	done := make(chan struct{})
	if !verbose && !viper.GetBool("quiet") && isatty.IsTerminal(os.Stdout.Fd()) {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		go func() {
			ticker := time.NewTicker(200 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					bar.Add(1)
				}
			}
		}()
	}

	code, err := tmpl.Run(registry.Resolver(), input, output, stdout, stderr)

	close(done)
	if bar != nil {
		bar.Finish()
	}

	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("%s exited with code %d", tmpl.Executable(), code)
	}

	util.SuccessLog("%s -> %s", input, output)
	return nil
}
