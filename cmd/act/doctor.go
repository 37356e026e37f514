package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/franz/codec-toolbox/internal/codec"
	"github.com/franz/codec-toolbox/internal/command"
	"github.com/franz/codec-toolbox/internal/store"
	"github.com/franz/codec-toolbox/internal/util"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run diagnostic checks on the codec registry and tools",
	Long: `Run diagnostic checks to ensure act can operate correctly.

This command checks:
- SQLite version and database accessibility/integrity
- For every registered codec, which encoder and decoder commands
  resolve on the current PATH

Use this command to find out which codecs can actually be transcoded
on this host.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	name    string
	message string
	error   bool
	warning bool
}

func runDoctor(cmd *cobra.Command, args []string) error {
	util.InfoLog("=== ACT Doctor - System Diagnostics ===")
	util.InfoLog("")

	results := []checkResult{checkSQLite()}

	dbPath, err := databasePath()
	if err != nil {
		return err
	}
	results = append(results, checkDatabase(dbPath))

	registry, err := openRegistry()
	if err != nil {
		results = append(results, checkResult{
			name:    "registry",
			error:   true,
			message: err.Error(),
		})
	} else {
		defer registry.Close()

		codecs, err := registry.ListCodecs()
		if err != nil {
			return err
		}
		sort.Slice(codecs, func(i, j int) bool {
			return codecs[i].Name < codecs[j].Name
		})

		for _, c := range codecs {
			results = append(results, checkCodec(c, registry.Resolver()))
		}
	}

	// Print results
	util.InfoLog("")
	util.InfoLog("=== Diagnostic Results ===")
	util.InfoLog("")

	hasErrors := false
	hasWarnings := false

	for _, r := range results {
		symbol := "✓"
		if r.error {
			symbol = "✗"
			hasErrors = true
		} else if r.warning {
			symbol = "⚠"
			hasWarnings = true
		}

		line := fmt.Sprintf("[%s] %s", symbol, r.name)
		if r.message != "" {
			line += fmt.Sprintf(": %s", r.message)
		}

		if r.error {
			util.ErrorLog("%s", line)
		} else if r.warning {
			util.WarnLog("%s", line)
		} else {
			util.SuccessLog("%s", line)
		}
	}

	// Summary
	util.InfoLog("")
	if hasErrors {
		util.ErrorLog("Some critical checks failed. Please resolve errors before running act.")
		return fmt.Errorf("system diagnostics failed")
	} else if hasWarnings {
		util.WarnLog("Some codecs have no usable commands on this host. Install the missing tools or register alternatives.")
	} else {
		util.SuccessLog("All checks passed! Every registered codec is usable.")
	}

	return nil
}

// checkSQLite verifies the SQLite driver works
func checkSQLite() checkResult {
	version := store.SQLiteVersion()
	if version == "" {
		return checkResult{
			name:    "sqlite",
			error:   true,
			message: "driver failed to open an in-memory database",
		}
	}

	return checkResult{
		name:    "sqlite",
		message: fmt.Sprintf("version %s", version),
	}
}

// checkDatabase verifies the codec database location is usable
func checkDatabase(dbPath string) checkResult {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		// Check the parent directory is writable by creating it
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return checkResult{
				name:    "database",
				error:   true,
				message: fmt.Sprintf("cannot create %s: %v", filepath.Dir(dbPath), err),
			}
		}
		return checkResult{
			name:    "database",
			message: fmt.Sprintf("%s will be created on first use", dbPath),
		}
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return checkResult{
			name:    "database",
			error:   true,
			message: fmt.Sprintf("cannot open %s: %v", dbPath, err),
		}
	}
	defer s.Close()

	if err := s.CheckIntegrity(); err != nil {
		return checkResult{
			name:    "database",
			error:   true,
			message: err.Error(),
		}
	}

	return checkResult{
		name:    "database",
		message: dbPath,
	}
}

// checkCodec reports which of a codec's commands resolve on the
// search path. A codec with registered commands none of which resolve
// is a warning; error states are reserved for storage failures.
func checkCodec(c *codec.Codec, resolver *command.Resolver) checkResult {
	result := checkResult{name: "codec " + c.Name}

	encoders, err := c.Encoders()
	if err != nil {
		result.error = true
		result.message = err.Error()
		return result
	}
	decoders, err := c.Decoders()
	if err != nil {
		result.error = true
		result.message = err.Error()
		return result
	}

	if len(encoders)+len(decoders) == 0 {
		result.warning = true
		result.message = "no commands registered"
		return result
	}

	var parts []string
	allMissing := true
	for kind, templates := range map[string][]*command.Template{
		"encode": encoders,
		"decode": decoders,
	} {
		if len(templates) == 0 {
			continue
		}
		available := 0
		for _, t := range templates {
			if t.Available(resolver) {
				available++
			}
		}
		if available > 0 {
			allMissing = false
		}
		parts = append(parts, fmt.Sprintf("%s %d/%d available", kind, available, len(templates)))
	}

	sort.Strings(parts)
	result.message = strings.Join(parts, ", ")
	result.warning = allMissing
	return result
}
