package xml

import (
	"encoding/xml"
	"io"
	"strings"
)

// Paragraph represents a paragraph in the document
type Paragraph struct {
	Properties *ParagraphProperties
	// Content maintains the order of runs and hyperlinks
	Content []ParagraphContent
}

// isBodyElement implements the BodyElement interface
func (p Paragraph) isBodyElement() {}

// UnmarshalXML implements custom XML unmarshaling to preserve element order
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				var props ParagraphProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				p.Properties = &props
			case "r":
				var run Run
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, &run)
			case "hyperlink":
				var hyperlink Hyperlink
				if err := d.DecodeElement(&hyperlink, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, &hyperlink)
			default:
				// Tracked changes, fields, bookmarks and smart tags are not
				// direct runs of the paragraph.
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// GetText returns the concatenated text of all runs and hyperlinks in a paragraph
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, content := range p.Content {
		sb.WriteString(content.GetText())
	}
	return sb.String()
}

// Runs returns the paragraph's direct runs, excluding runs nested in hyperlinks.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, content := range p.Content {
		if r, ok := content.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// StyleID returns the paragraph's w:pStyle id, or "" when none is set.
func (p *Paragraph) StyleID() string {
	if p.Properties == nil {
		return ""
	}
	return p.Properties.Style.ID()
}

// ParagraphProperties represents paragraph formatting properties
type ParagraphProperties struct {
	Style             *Style               `xml:"pStyle"`
	KeepNext          *OnOff               `xml:"keepNext"`
	KeepLines         *OnOff               `xml:"keepLines"`
	PageBreakBefore   *OnOff               `xml:"pageBreakBefore"`
	WidowControl      *OnOff               `xml:"widowControl"`
	Numbering         *NumberingProperties `xml:"numPr"`
	Spacing           *Spacing             `xml:"spacing"`
	Indentation       *Indentation         `xml:"ind"`
	Alignment         *StringVal           `xml:"jc"`
	SectionProperties *SectionProperties   `xml:"sectPr"`
}

// NumberingProperties represents w:numPr, the paragraph's own list numbering
type NumberingProperties struct {
	Level *StringVal `xml:"ilvl"`
	ID    *StringVal `xml:"numId"`
}

// IsNumbered reports whether the properties attach the paragraph to a
// numbering definition. A w:numId of 0 removes numbering.
func (n *NumberingProperties) IsNumbered() bool {
	if n == nil {
		return false
	}
	if n.ID == nil {
		// w:ilvl alone still marks the paragraph as a numbered item
		return n.Level != nil
	}
	id, ok := parseInt(n.ID.Val)
	return !ok || id != 0
}

// ListLevel returns the w:ilvl value. ok is false when any link of the
// numPr/ilvl/val chain is missing or malformed.
func (n *NumberingProperties) ListLevel() (level int, ok bool) {
	if n == nil || n.Level == nil {
		return 0, false
	}
	return parseInt(n.Level.Val)
}

// Indentation represents paragraph indentation. Values are twentieths of a
// point (twips). w:start/w:end are the bidi-aware names of w:left/w:right.
type Indentation struct {
	Left      string `xml:"left,attr"`
	Start     string `xml:"start,attr"`
	Right     string `xml:"right,attr"`
	End       string `xml:"end,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// LeftTwips returns the left (start) indentation.
func (i *Indentation) LeftTwips() (int, bool) {
	if i == nil {
		return 0, false
	}
	if v, ok := parseInt(i.Left); ok {
		return v, true
	}
	return parseInt(i.Start)
}

// RightTwips returns the right (end) indentation.
func (i *Indentation) RightTwips() (int, bool) {
	if i == nil {
		return 0, false
	}
	if v, ok := parseInt(i.Right); ok {
		return v, true
	}
	return parseInt(i.End)
}

// FirstLineTwips returns the first-line indentation relative to the left
// indent. A hanging indent is returned as a negative value and wins over
// w:firstLine, matching how Word resolves the pair.
func (i *Indentation) FirstLineTwips() (int, bool) {
	if i == nil {
		return 0, false
	}
	if v, ok := parseInt(i.Hanging); ok {
		return -v, true
	}
	return parseInt(i.FirstLine)
}

// Line spacing rules
const (
	LineRuleAuto    = "auto"
	LineRuleExact   = "exact"
	LineRuleAtLeast = "atLeast"
)

// Spacing represents paragraph spacing
type Spacing struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

// BeforeTwips returns the spacing above the paragraph.
func (s *Spacing) BeforeTwips() (int, bool) {
	if s == nil {
		return 0, false
	}
	return parseInt(s.Before)
}

// AfterTwips returns the spacing below the paragraph.
func (s *Spacing) AfterTwips() (int, bool) {
	if s == nil {
		return 0, false
	}
	return parseInt(s.After)
}

// LineValue returns w:line together with its rule. With the auto rule
// (the default) the value is in 240ths of a line, otherwise in twips.
func (s *Spacing) LineValue() (line int, rule string, ok bool) {
	if s == nil {
		return 0, "", false
	}
	line, ok = parseInt(s.Line)
	if !ok {
		return 0, "", false
	}
	rule = s.LineRule
	if rule == "" {
		rule = LineRuleAuto
	}
	return line, rule, true
}

// Hyperlink represents a hyperlink in the document
type Hyperlink struct {
	ID   string `xml:"id,attr"`
	Runs []Run  `xml:"r"`
}

// isParagraphContent implements the ParagraphContent interface
func (h Hyperlink) isParagraphContent() {}

// GetText returns the concatenated text of all runs in a hyperlink
func (h *Hyperlink) GetText() string {
	var sb strings.Builder
	for i := range h.Runs {
		sb.WriteString(h.Runs[i].GetText())
	}
	return sb.String()
}
