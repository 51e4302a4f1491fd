package docxjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output serialization
type Format string

// Supported output formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name to a Format. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q", name)
}

// Extension returns the file extension written for the format
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Encode writes content to w in the given format, indented by indent spaces.
// Text is written as UTF-8 without escaping non-ASCII or HTML characters.
func Encode(w io.Writer, content *DocumentContent, format Format, indent int) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(content); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(content); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err := w.Write(unescapeLineSeparators(buf.Bytes()))
		return err
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// OutputName returns the sibling file name for an input document: the input
// name with its last extension replaced by the format's extension.
func OutputName(input string, format Format) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + format.Extension()
}

// unescapeLineSeparators restores U+2028 and U+2029, which encoding/json
// always writes as \u escapes. An escape preceded by an odd number of
// backslashes is literal text and is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '\\' && i+5 < len(data) && string(data[i+1:i+5]) == "u202" &&
			(data[i+5] == '8' || data[i+5] == '9') && evenBackslashesBefore(data, i) {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i])
	}
	return out
}

func evenBackslashesBefore(data []byte, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && data[j] == '\\'; j-- {
		n++
	}
	return n%2 == 0
}
