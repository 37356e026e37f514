package command

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder tokens recognized in command patterns
const (
	placeholderInput  = "FILE"
	placeholderOutput = "OUTFILE"
)

// Sentinel errors for template handling
var (
	// ErrInvalidTemplate indicates a pattern without exactly one FILE
	// and one OUTFILE token
	ErrInvalidTemplate = errors.New("invalid command template")

	// ErrNotAvailable indicates the template's executable cannot be
	// resolved on the search path
	ErrNotAvailable = errors.New("command not available")
)

// TokenKind classifies a template token
type TokenKind int

const (
	// TokenLiteral is passed to the external process verbatim
	TokenLiteral TokenKind = iota
	// TokenInput marks the input file placeholder (FILE)
	TokenInput
	// TokenOutput marks the output file placeholder (OUTFILE)
	TokenOutput
)

// Token is one element of a parsed command pattern
type Token struct {
	Kind TokenKind
	Text string
}

// Template is a parsed encoder or decoder command pattern. The
// pattern is whitespace-tokenized; no shell expansion or quoting is
// ever applied.
type Template struct {
	tokens []Token
}

// Parse tokenizes a command pattern into a template. Parse itself
// never fails; Validate checks the placeholder contract.
func Parse(pattern string) *Template {
	fields := strings.Fields(pattern)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		switch f {
		case placeholderInput:
			tokens = append(tokens, Token{Kind: TokenInput, Text: f})
		case placeholderOutput:
			tokens = append(tokens, Token{Kind: TokenOutput, Text: f})
		default:
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: f})
		}
	}
	return &Template{tokens: tokens}
}

// String reassembles the pattern for display and storage
func (t *Template) String() string {
	parts := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// Executable returns the command's first token, the program to run
func (t *Template) Executable() string {
	if len(t.tokens) == 0 {
		return ""
	}
	return t.tokens[0].Text
}

// Validate confirms the pattern contains exactly one FILE and exactly
// one OUTFILE token
func (t *Template) Validate() error {
	inputs, outputs := 0, 0
	for _, tok := range t.tokens {
		switch tok.Kind {
		case TokenInput:
			inputs++
		case TokenOutput:
			outputs++
		}
	}
	if inputs != 1 {
		return fmt.Errorf("%w: command requires exactly one FILE, found %d", ErrInvalidTemplate, inputs)
	}
	if outputs != 1 {
		return fmt.Errorf("%w: command requires exactly one OUTFILE, found %d", ErrInvalidTemplate, outputs)
	}
	return nil
}

// Available reports whether the template's executable resolves on the
// search path
func (t *Template) Available(r *Resolver) bool {
	if len(t.tokens) == 0 {
		return false
	}
	_, ok := r.Resolve(t.Executable())
	return ok
}

// Instantiate returns a fresh argument list with the FILE token
// replaced by inputPath and the OUTFILE token by outputPath
func (t *Template) Instantiate(inputPath, outputPath string) ([]string, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	args := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		switch tok.Kind {
		case TokenInput:
			args[i] = inputPath
		case TokenOutput:
			args[i] = outputPath
		default:
			args[i] = tok.Text
		}
	}
	return args, nil
}
