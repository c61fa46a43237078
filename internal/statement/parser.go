// Package statement extracts transaction records from raw bank statement
// text. One dialect (Volksbank) is built in; other dialects register
// through the parser Registry.
package statement

import (
	"fmt"
	"strings"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

// Parser converts one statement document's raw text into a Statement.
type Parser interface {
	Parse(text string) (model.Statement, error)
	Format() string
}

// ParseError reports a transaction-start line that failed downstream
// parsing. A statement is atomic: the caller gets no partial record set.
type ParseError struct {
	Line  string // offending source line
	Index int    // zero-based line index in the document
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Index+1, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Registry holds named statement parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate statement format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&VolksbankParser{})
	return r
}
