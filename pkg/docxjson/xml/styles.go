package xml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Style types
const (
	StyleTypeParagraph = "paragraph"
	StyleTypeCharacter = "character"
	StyleTypeTable     = "table"
)

// Styles represents the w:styles element in styles.xml
type Styles struct {
	XMLName xml.Name          `xml:"styles"`
	Styles  []StyleDefinition `xml:"style"`
}

// StyleDefinition represents a single w:style element
type StyleDefinition struct {
	Type    string     `xml:"type,attr"`
	StyleID string     `xml:"styleId,attr"`
	Default string     `xml:"default,attr"`
	Name    *StringVal `xml:"name"`
}

// StyleType returns w:type, which defaults to paragraph when omitted.
func (s *StyleDefinition) StyleType() string {
	if s.Type == "" {
		return StyleTypeParagraph
	}
	return s.Type
}

// IsDefault reports whether the style is the default for its type
func (s *StyleDefinition) IsDefault() bool {
	switch s.Default {
	case "1", "true", "on":
		return true
	}
	return false
}

// ParseStyles parses a styles.xml part
func ParseStyles(r io.Reader) (*Styles, error) {
	var styles Styles
	if err := xml.NewDecoder(r).Decode(&styles); err != nil {
		return nil, fmt.Errorf("failed to parse styles.xml: %w", err)
	}
	return &styles, nil
}
