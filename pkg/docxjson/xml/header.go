package xml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Header represents a header part (w:hdr)
type Header struct {
	Elements []BodyElement
}

// UnmarshalXML implements custom XML unmarshaling to preserve element order
func (h *Header) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	elements, _, err := decodeBlockContent(d, start)
	if err != nil {
		return err
	}
	h.Elements = elements
	return nil
}

// Paragraphs returns the header's top-level paragraphs in order.
func (h *Header) Paragraphs() []*Paragraph {
	if h == nil {
		return nil
	}
	return paragraphsOf(h.Elements)
}

// ParseHeader parses a header part such as word/header1.xml
func ParseHeader(r io.Reader) (*Header, error) {
	decoder := xml.NewDecoder(r)
	var hdr Header
	if err := decoder.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	return &hdr, nil
}
