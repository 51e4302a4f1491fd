package xml

import (
	"strconv"
	"strings"
)

// BodyElement represents any element that can appear in a document body
type BodyElement interface {
	isBodyElement()
}

// ParagraphContent represents any content that can appear in a paragraph
type ParagraphContent interface {
	isParagraphContent()
	GetText() string
}

// Style represents a style reference (pStyle, tblStyle)
type Style struct {
	Val string `xml:"val,attr"`
}

// ID returns the referenced style id, or "" for a nil reference.
func (s *Style) ID() string {
	if s == nil {
		return ""
	}
	return s.Val
}

// OnOff is a WordprocessingML toggle property such as w:b or w:keepNext.
// The element's presence turns the property on unless w:val says otherwise.
type OnOff struct {
	Val *string `xml:"val,attr"`
}

// Value returns the tri-state value of the toggle: nil when the element is
// absent, otherwise true or false.
func (o *OnOff) Value() *bool {
	if o == nil {
		return nil
	}
	v := true
	if o.Val != nil {
		switch strings.ToLower(strings.TrimSpace(*o.Val)) {
		case "false", "0", "off":
			v = false
		}
	}
	return &v
}

// StringVal is an element whose only payload is a w:val attribute.
type StringVal struct {
	Val string `xml:"val,attr"`
}

// String returns the value, or "" for a nil element.
func (s *StringVal) String() string {
	if s == nil {
		return ""
	}
	return s.Val
}

// parseInt reads an integer attribute value. Empty or malformed values are
// reported as absent.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
