package main

import (
	"path/filepath"
	"testing"

	"github.com/franz/codec-toolbox/internal/codec"
)

func TestRegisterEncoderKeepsDashedPattern(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "codecs.db")

	// The documented invocation: the pattern is one quoted argument,
	// so its dashes never reach the flag parser
	rootCmd.SetArgs([]string{"--db", dbPath, "register", "encoder", "mp3",
		"--priority", "5", "lame --quiet -b 320 FILE OUTFILE"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("register encoder failed: %v", err)
	}

	registry, err := codec.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open registry: %v", err)
	}
	defer registry.Close()

	mp3, err := registry.GetCodec("mp3")
	if err != nil {
		t.Fatalf("failed to get mp3: %v", err)
	}
	encoders, err := mp3.Encoders()
	if err != nil {
		t.Fatalf("failed to get encoders: %v", err)
	}
	if len(encoders) == 0 {
		t.Fatal("expected registered encoder")
	}

	// Priority 5 outranks the seeded default at 0, so it sorts first,
	// with every dashed token intact
	if got := encoders[0].String(); got != "lame --quiet -b 320 FILE OUTFILE" {
		t.Errorf("expected pattern stored verbatim, got %q", got)
	}
}

func TestRegisterEncoderRejectsUnquotedPattern(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "codecs.db")

	// Unquoted patterns hand their dashes to the flag parser; that
	// must fail loudly instead of storing a corrupted pattern
	rootCmd.SetArgs([]string{"--db", dbPath, "register", "encoder", "mp3",
		"lame", "-b", "320", "FILE", "OUTFILE"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected unquoted pattern to be rejected")
	}
}
