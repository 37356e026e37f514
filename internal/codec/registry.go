// Package codec manages the persistent registry of audio codecs:
// named codecs, the file extensions they claim, and their ranked
// encoder/decoder command templates.
package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/franz/codec-toolbox/internal/command"
	"github.com/franz/codec-toolbox/internal/store"
	"github.com/franz/codec-toolbox/internal/util"
)

// Sentinel errors for registry lookups
var (
	// ErrCodecNotFound indicates a lookup by an unregistered codec name
	ErrCodecNotFound = errors.New("codec not found")

	// ErrNoCommandAvailable indicates none of a codec's command
	// templates resolve on the search path
	ErrNoCommandAvailable = errors.New("no command available")

	// ErrInvalidTemplate mirrors the command package sentinel so
	// callers can check registration failures against one package
	ErrInvalidTemplate = command.ErrInvalidTemplate
)

// Registry is the persistent store of codecs, extensions, and command
// templates. It holds one storage handle and assumes a single logical
// owner; concurrent callers must serialize access externally.
type Registry struct {
	store    *store.Store
	resolver *command.Resolver
}

// Options holds optional registry dependencies
type Options struct {
	// Resolver overrides the search path resolver, mainly for tests
	Resolver *command.Resolver
}

// Open opens or creates the codec registry at the given path with
// default options
func Open(path string) (*Registry, error) {
	return OpenWithOptions(path, nil)
}

// OpenWithOptions opens or creates the codec registry with custom
// options. On first use each built-in default codec not yet present
// in storage is seeded with its extensions and command templates; a
// codec already present is left untouched even if the built-in
// defaults for it have since changed.
func OpenWithOptions(path string, opts *Options) (*Registry, error) {
	if opts == nil {
		opts = &Options{}
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open codec registry %s: %w", path, err)
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = command.NewResolver()
	}

	reg := &Registry{store: s, resolver: resolver}

	if err := reg.seedDefaults(); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to seed default codecs: %w", err)
	}

	return reg, nil
}

// Close closes the underlying storage
func (r *Registry) Close() error {
	return r.store.Close()
}

// Resolver returns the search path resolver used for availability
// checks
func (r *Registry) Resolver() *command.Resolver {
	return r.resolver
}

// GetCodec returns the codec registered under name, or
// ErrCodecNotFound
func (r *Registry) GetCodec(name string) (*Codec, error) {
	row, err := r.store.GetCodecByName(name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: %s", ErrCodecNotFound, name)
	}
	return r.wrap(row), nil
}

// RegisterCodec registers a new codec. Registration is idempotent: a
// duplicate name is logged and the already-registered codec is
// returned with its stored description untouched.
func (r *Registry) RegisterCodec(name, description string) (*Codec, error) {
	if name == "" {
		return nil, fmt.Errorf("codec name must not be empty")
	}

	id, err := r.store.InsertCodec(name, description)
	if err != nil {
		if !store.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to register codec %s: %w", name, err)
		}
		util.DebugLog("codec already registered: %s", name)
		return r.GetCodec(name)
	}

	return r.wrap(&store.Codec{ID: id, Name: name, Description: description}), nil
}

// UnregisterCodec removes a codec along with all of its extensions
// and command templates. Removing an unknown codec is a logged no-op,
// matching the idempotent registration policy.
func (r *Registry) UnregisterCodec(name string) error {
	affected, err := r.store.DeleteCodec(name)
	if err != nil {
		return fmt.Errorf("failed to unregister codec %s: %w", name, err)
	}
	if affected == 0 {
		util.DebugLog("codec not registered: %s", name)
	}
	return nil
}

// ListCodecs returns all registered codecs, unordered
func (r *Registry) ListCodecs() ([]*Codec, error) {
	rows, err := r.store.ListCodecs()
	if err != nil {
		return nil, err
	}

	codecs := make([]*Codec, len(rows))
	for i, row := range rows {
		codecs[i] = r.wrap(row)
	}
	return codecs, nil
}

// MatchExtension matches a file path to a codec by its extension,
// case-insensitively. Directories never match, and a path without an
// extension returns nil. A nil codec with a nil error means no match.
func (r *Registry) MatchExtension(path string) (*Codec, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		util.WarnLog("attempt to match codec extension to directory: %s", path)
		return nil, nil
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		// No extension; a dotfile like ".flac" counts as extensionless
		return nil, nil
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	row, err := r.store.FindCodecByExtension(ext)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return r.wrap(row), nil
}

func (r *Registry) wrap(row *store.Codec) *Codec {
	return &Codec{
		registry:    r,
		id:          row.ID,
		Name:        row.Name,
		Description: row.Description,
	}
}

// seedDefaults inserts every built-in codec name missing from
// storage. Each codec goes in as one transaction: a failure partway
// must not leave a codec row without its extensions and commands,
// because the existing name would then block the repair on the next
// open.
func (r *Registry) seedDefaults() error {
	for _, d := range defaultCodecs {
		existing, err := r.store.GetCodecByName(d.name)
		if err != nil {
			return err
		}
		if existing != nil {
			// Already configured, skip
			continue
		}

		exts := make([]string, len(d.extensions))
		for i, ext := range d.extensions {
			exts[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
		}
		for _, patterns := range [][]string{d.encoders, d.decoders} {
			for _, pattern := range patterns {
				if err := command.Parse(pattern).Validate(); err != nil {
					return fmt.Errorf("default codec %s: %w", d.name, err)
				}
			}
		}

		util.DebugLog("seeding default codec: %s", d.name)
		if err := r.store.InsertCodecBundle(d.name, d.description, exts, d.encoders, d.decoders); err != nil {
			return err
		}
	}
	return nil
}
