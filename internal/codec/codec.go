package codec

import (
	"fmt"
	"strings"

	"github.com/franz/codec-toolbox/internal/command"
	"github.com/franz/codec-toolbox/internal/store"
	"github.com/franz/codec-toolbox/internal/util"
)

// Codec is one registered codec. Instances come from Registry lookups
// and stay bound to the registry that produced them.
type Codec struct {
	registry    *Registry
	id          int64
	Name        string
	Description string
}

// ID returns the codec's storage row ID
func (c *Codec) ID() int64 {
	return c.id
}

func (c *Codec) String() string {
	return c.Name + ": " + c.Description
}

// Extensions returns all file extensions claimed by this codec
func (c *Codec) Extensions() ([]string, error) {
	return c.registry.store.GetExtensions(c.id)
}

// Encoders returns the codec's encoder templates ordered by
// descending priority, ties broken by registration order
func (c *Codec) Encoders() ([]*command.Template, error) {
	return c.templates(store.KindEncoder)
}

// Decoders returns the codec's decoder templates ordered by
// descending priority, ties broken by registration order
func (c *Codec) Decoders() ([]*command.Template, error) {
	return c.templates(store.KindDecoder)
}

func (c *Codec) templates(kind store.CommandKind) ([]*command.Template, error) {
	rows, err := c.registry.store.GetCommands(kind, c.id)
	if err != nil {
		return nil, err
	}

	templates := make([]*command.Template, len(rows))
	for i, row := range rows {
		templates[i] = command.Parse(row.Pattern)
	}
	return templates, nil
}

// BestEncoder returns the highest-priority encoder whose executable
// resolves on the search path, or ErrNoCommandAvailable
func (c *Codec) BestEncoder() (*command.Template, error) {
	return c.best(store.KindEncoder)
}

// BestDecoder returns the highest-priority decoder whose executable
// resolves on the search path, or ErrNoCommandAvailable
func (c *Codec) BestDecoder() (*command.Template, error) {
	return c.best(store.KindDecoder)
}

func (c *Codec) best(kind store.CommandKind) (*command.Template, error) {
	templates, err := c.templates(kind)
	if err != nil {
		return nil, err
	}

	for _, t := range templates {
		if t.Available(c.registry.resolver) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s for codec %s on this host", ErrNoCommandAvailable, kind, c.Name)
}

// RegisterExtension claims a file extension for this codec. The
// extension is stored lower-case without a leading dot. A duplicate
// claim, by this or any other codec, is logged and ignored.
func (c *Codec) RegisterExtension(extension string) error {
	extension = strings.ToLower(strings.TrimPrefix(extension, "."))
	if extension == "" {
		return fmt.Errorf("extension must not be empty")
	}

	if err := c.registry.store.InsertExtension(c.id, extension); err != nil {
		if !store.IsUniqueViolation(err) {
			return fmt.Errorf("failed to register extension %s: %w", extension, err)
		}
		util.DebugLog("extension already registered: %s", extension)
	}
	return nil
}

// RegisterEncoder registers a ranked encoder command pattern. The
// pattern must contain exactly one FILE and one OUTFILE token;
// validation failure aborts the registration with ErrInvalidTemplate.
func (c *Codec) RegisterEncoder(pattern string, priority int) error {
	return c.registerCommand(store.KindEncoder, pattern, priority)
}

// RegisterDecoder registers a ranked decoder command pattern, with
// the same validation contract as RegisterEncoder
func (c *Codec) RegisterDecoder(pattern string, priority int) error {
	return c.registerCommand(store.KindDecoder, pattern, priority)
}

func (c *Codec) registerCommand(kind store.CommandKind, pattern string, priority int) error {
	tmpl := command.Parse(pattern)
	if err := tmpl.Validate(); err != nil {
		return fmt.Errorf("failed to register %s %q: %w", kind, pattern, err)
	}
	return c.registry.store.InsertCommand(kind, c.id, tmpl.String(), priority)
}
