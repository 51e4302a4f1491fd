package docxjson

import (
	"errors"
	"fmt"
)

// ErrNotDocx is returned (wrapped in a DocumentReadError) when a ZIP archive
// has no word/document.xml part.
var ErrNotDocx = errors.New("not a valid DOCX file: missing word/document.xml")

// DocumentReadError represents a document that could be read from disk but
// not parsed: a broken ZIP container, a missing main part or malformed XML.
type DocumentReadError struct {
	Path  string
	Part  string
	Cause error
}

func (e *DocumentReadError) Error() string {
	switch {
	case e.Part != "" && e.Cause != nil:
		return fmt.Sprintf("cannot read document '%s' (part %s): %v", e.Path, e.Part, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("cannot read document '%s': %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("cannot read document '%s'", e.Path)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}

// NewDocumentReadError creates a new document read error
func NewDocumentReadError(path, part string, cause error) error {
	return &DocumentReadError{
		Path:  path,
		Part:  part,
		Cause: cause,
	}
}

// IOError represents a failure to read an input or write an output file
type IOError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("i/o error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("i/o error during %s of '%s'", e.Operation, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NewIOError creates a new I/O error
func NewIOError(operation, path string, cause error) error {
	return &IOError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Message)
}
