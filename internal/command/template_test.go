package command

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"valid simple", "lame FILE OUTFILE", false},
		{"valid with flags", "lame --quiet -b 320 --vbr-new FILE OUTFILE", false},
		{"valid reversed order", "faad -q -o OUTFILE FILE -b1", false},
		{"missing FILE", "lame OUTFILE", true},
		{"missing OUTFILE", "lame FILE", true},
		{"missing both", "lame --decode", true},
		{"duplicate FILE", "lame FILE FILE OUTFILE", true},
		{"duplicate OUTFILE", "lame FILE OUTFILE OUTFILE", true},
		{"empty pattern", "", true},
		{"lowercase is literal", "lame file outfile FILE OUTFILE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Parse(tt.pattern).Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.pattern)
				}
				if !errors.Is(err, ErrInvalidTemplate) {
					t.Errorf("expected ErrInvalidTemplate, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error for %q: %v", tt.pattern, err)
			}
		})
	}
}

func TestInstantiate(t *testing.T) {
	tmpl := Parse("lame --quiet -b 320 FILE OUTFILE")

	args, err := tmpl.Instantiate("/in.wav", "/out.mp3")
	if err != nil {
		t.Fatalf("instantiate failed: %v", err)
	}

	want := []string{"lame", "--quiet", "-b", "320", "/in.wav", "/out.mp3"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %d: %v", len(want), len(args), args)
	}
	for i, w := range want {
		if args[i] != w {
			t.Errorf("arg %d: expected %q, got %q", i, w, args[i])
		}
	}
}

func TestInstantiateReturnsCopy(t *testing.T) {
	tmpl := Parse("flac -f --decode -o OUTFILE FILE")

	first, err := tmpl.Instantiate("/a.flac", "/a.wav")
	if err != nil {
		t.Fatalf("instantiate failed: %v", err)
	}
	second, err := tmpl.Instantiate("/b.flac", "/b.wav")
	if err != nil {
		t.Fatalf("instantiate failed: %v", err)
	}

	if first[4] != "/a.wav" || second[4] != "/b.wav" {
		t.Errorf("instantiations share state: %v vs %v", first, second)
	}
	if tmpl.String() != "flac -f --decode -o OUTFILE FILE" {
		t.Errorf("template mutated: %s", tmpl)
	}
}

func TestInstantiateInvalidTemplate(t *testing.T) {
	tmpl := Parse("lame --decode FILE")

	if _, err := tmpl.Instantiate("/in", "/out"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("expected ErrInvalidTemplate, got: %v", err)
	}
}

func TestExecutable(t *testing.T) {
	if got := Parse("oggenc --quiet -o OUTFILE FILE").Executable(); got != "oggenc" {
		t.Errorf("expected oggenc, got %q", got)
	}
	if got := Parse("").Executable(); got != "" {
		t.Errorf("expected empty executable, got %q", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	// Whitespace runs collapse, tokens survive
	tmpl := Parse("wavpack  -yhx   FILE -o OUTFILE")
	if got := tmpl.String(); got != "wavpack -yhx FILE -o OUTFILE" {
		t.Errorf("unexpected round trip: %q", got)
	}
}
