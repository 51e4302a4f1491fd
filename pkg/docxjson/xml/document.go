package xml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Document represents a Word document structure
type Document struct {
	XMLName xml.Name `xml:"document"`
	Body    *Body    `xml:"body"`
}

// Body represents the document body
type Body struct {
	// Elements maintains the order of all body elements
	Elements []BodyElement
	// SectionProperties is the final section's w:sectPr at the end of the body
	SectionProperties *SectionProperties
}

// UnmarshalXML implements custom XML unmarshaling to preserve element order
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	elements, sectPr, err := decodeBlockContent(d, start)
	if err != nil {
		return err
	}
	b.Elements = elements
	b.SectionProperties = sectPr
	return nil
}

// Paragraphs returns the body-level paragraphs in document order.
func (b *Body) Paragraphs() []*Paragraph {
	if b == nil {
		return nil
	}
	return paragraphsOf(b.Elements)
}

// Tables returns the body-level tables in document order.
func (b *Body) Tables() []*Table {
	if b == nil {
		return nil
	}
	return tablesOf(b.Elements)
}

// Sections returns every section of the document in order. Sections other
// than the last are closed by a paragraph whose properties carry a w:sectPr;
// the last section's properties sit at the end of the body.
func (doc *Document) Sections() []*SectionProperties {
	if doc == nil || doc.Body == nil {
		return nil
	}
	var sections []*SectionProperties
	for _, p := range doc.Body.Paragraphs() {
		if p.Properties != nil && p.Properties.SectionProperties != nil {
			sections = append(sections, p.Properties.SectionProperties)
		}
	}
	if doc.Body.SectionProperties != nil {
		sections = append(sections, doc.Body.SectionProperties)
	}
	return sections
}

// ParseDocument parses a Word document XML
func ParseDocument(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

// decodeBlockContent reads the paragraphs and tables of a block container
// (w:body, w:hdr) in order. Any w:sectPr found directly in the container is
// returned separately.
func decodeBlockContent(d *xml.Decoder, start xml.StartElement) ([]BodyElement, *SectionProperties, error) {
	var (
		elements []BodyElement
		sectPr   *SectionProperties
	)
	for {
		token, err := d.Token()
		if err == io.EOF {
			return nil, nil, fmt.Errorf("unexpected end of %s", start.Name.Local)
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &t); err != nil {
					return nil, nil, err
				}
				elements = append(elements, &para)
			case "tbl":
				var table Table
				if err := d.DecodeElement(&table, &t); err != nil {
					return nil, nil, err
				}
				elements = append(elements, &table)
			case "sectPr":
				var props SectionProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return nil, nil, err
				}
				sectPr = &props
			default:
				// Content controls, bookmarks and the like are not part of
				// the paragraph/table sequence.
				if err := d.Skip(); err != nil {
					return nil, nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return elements, sectPr, nil
			}
		}
	}
}

func paragraphsOf(elements []BodyElement) []*Paragraph {
	var paras []*Paragraph
	for _, el := range elements {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

func tablesOf(elements []BodyElement) []*Table {
	var tables []*Table
	for _, el := range elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}
