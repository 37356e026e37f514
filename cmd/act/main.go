package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/franz/codec-toolbox/internal/codec"
	"github.com/franz/codec-toolbox/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set at build time
	Version = "dev"

	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "act",
		Short: "Audio Codec Toolbox - manage codecs and transcode with external tools",
		Long: `act (Audio Codec Toolbox) maintains a registry of audio codecs, the file
extensions they claim, and ranked command templates for external encoders
and decoders. It picks the best tool available on your PATH and runs it
to transcode files.`,
		Version: Version,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/act.yaml)")
	rootCmd.PersistentFlags().String("db", "", "codec database file (default is ~/.codec-toolbox/codecs.db)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "quiet output (errors only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Bind flags to viper
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in common locations
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.SetConfigName("act")
		viper.SetConfigType("yaml")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("ACT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	err := viper.ReadInConfig()

	util.SetVerbose(viper.GetBool("verbose"))
	util.SetQuiet(viper.GetBool("quiet"))
	if viper.GetBool("no-color") {
		util.SetColors(false)
	}

	if err == nil && !viper.GetBool("quiet") {
		util.DebugLog("Using config file: %s", viper.ConfigFileUsed())
	}
}

// databasePath returns the configured codec database location,
// defaulting to ~/.codec-toolbox/codecs.db
func databasePath() (string, error) {
	if dbPath := viper.GetString("db"); dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".codec-toolbox", "codecs.db"), nil
}

// openRegistry opens the codec registry at the configured location,
// creating the parent directory on first use
func openRegistry() (*codec.Registry, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return codec.Open(dbPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
