package xml

import (
	"encoding/xml"
	"io"
	"strings"
)

// Run represents a run of text with common properties
type Run struct {
	Properties *RunProperties
	// Content keeps text, tabs and breaks in document order
	Content []RunContent
}

// isParagraphContent implements the ParagraphContent interface
func (r Run) isParagraphContent() {}

// RunContent is a text-bearing child of a run
type RunContent interface {
	Text() string
}

// UnmarshalXML implements custom XML unmarshaling to keep run content in order
func (r *Run) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "rPr":
				var props RunProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				r.Properties = &props
			case "t":
				var text Text
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				r.Content = append(r.Content, &text)
			case "br", "cr":
				var br Break
				if err := d.DecodeElement(&br, &t); err != nil {
					return err
				}
				r.Content = append(r.Content, br)
			case "tab", "ptab":
				r.Content = append(r.Content, Tab{})
				if err := d.Skip(); err != nil {
					return err
				}
			case "noBreakHyphen":
				r.Content = append(r.Content, NoBreakHyphen{})
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				// Drawings, field codes and the like carry no run text
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

// GetText returns the text content of a run
func (r *Run) GetText() string {
	var sb strings.Builder
	for _, c := range r.Content {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

// Text represents w:t
type Text struct {
	Space   string `xml:"space,attr"`
	Content string `xml:",chardata"`
}

func (t *Text) Text() string { return t.Content }

// Tab represents w:tab or w:ptab inside a run
type Tab struct{}

func (Tab) Text() string { return "\t" }

// Break represents w:br and w:cr. Only text-wrapping breaks produce a line
// feed; page and column breaks carry no text.
type Break struct {
	Type string `xml:"type,attr"`
}

func (b Break) Text() string {
	if b.Type == "" || b.Type == "textWrapping" {
		return "\n"
	}
	return ""
}

// NoBreakHyphen represents w:noBreakHyphen
type NoBreakHyphen struct{}

func (NoBreakHyphen) Text() string { return "-" }

// RunProperties represents run formatting properties
type RunProperties struct {
	Bold          *OnOff     `xml:"b"`
	Italic        *OnOff     `xml:"i"`
	Caps          *OnOff     `xml:"caps"`
	Underline     *StringVal `xml:"u"`
	VerticalAlign *StringVal `xml:"vertAlign"`
	Color         *Color     `xml:"color"`
	Size          *StringVal `xml:"sz"`
	Highlight     *StringVal `xml:"highlight"`
	Font          *Font      `xml:"rFonts"`
}

// SizeHalfPoints returns w:sz, the font size in half-points.
func (p *RunProperties) SizeHalfPoints() (int, bool) {
	if p == nil || p.Size == nil {
		return 0, false
	}
	return parseInt(p.Size.Val)
}

// UnderlineValue returns the tri-state underline: nil when w:u is absent or
// has no w:val, false for w:val="none", true for any other underline style.
func (p *RunProperties) UnderlineValue() *bool {
	if p == nil || p.Underline == nil || p.Underline.Val == "" {
		return nil
	}
	v := p.Underline.Val != "none"
	return &v
}

// Vertical alignment values
const (
	VertAlignSubscript   = "subscript"
	VertAlignSuperscript = "superscript"
)

// Font represents w:rFonts
type Font struct {
	ASCII string `xml:"ascii,attr"`
}

// Name returns the font used for ASCII text, or "" when not set.
func (f *Font) Name() string {
	if f == nil {
		return ""
	}
	return f.ASCII
}

// Color represents w:color. Val is an RRGGBB hex value or "auto".
type Color struct {
	Val        string `xml:"val,attr"`
	ThemeColor string `xml:"themeColor,attr"`
}

// ColorAuto is the w:val of a color Word picks automatically
const ColorAuto = "auto"
