package docxjson

import (
	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// defaultStyleName is reported when neither the referenced style nor a
// default style of the same type can be found.
const defaultStyleName = "Normal"

// builtinStyleNames maps the lower-case names Word stores for some built-in
// styles to the names it shows in its UI.
var builtinStyleNames = map[string]string{
	"caption":   "Caption",
	"footer":    "Footer",
	"header":    "Header",
	"heading 1": "Heading 1",
	"heading 2": "Heading 2",
	"heading 3": "Heading 3",
	"heading 4": "Heading 4",
	"heading 5": "Heading 5",
	"heading 6": "Heading 6",
	"heading 7": "Heading 7",
	"heading 8": "Heading 8",
	"heading 9": "Heading 9",
}

// StyleSheet resolves style ids to display names
type StyleSheet struct {
	byID     map[string]*docxml.StyleDefinition
	defaults map[string]*docxml.StyleDefinition
}

// NewStyleSheet indexes parsed style definitions. A nil Styles gives an
// empty sheet on which every lookup falls back to "Normal".
func NewStyleSheet(styles *docxml.Styles) *StyleSheet {
	sheet := &StyleSheet{
		byID:     make(map[string]*docxml.StyleDefinition),
		defaults: make(map[string]*docxml.StyleDefinition),
	}
	if styles == nil {
		return sheet
	}
	for i := range styles.Styles {
		def := &styles.Styles[i]
		if def.StyleID != "" {
			sheet.byID[def.StyleID] = def
		}
		// the last default of a type in document order wins
		if def.IsDefault() {
			sheet.defaults[def.StyleType()] = def
		}
	}
	return sheet
}

// ParagraphStyleName returns the display name of a paragraph style. An empty
// or unknown id resolves to the default paragraph style.
func (s *StyleSheet) ParagraphStyleName(id string) string {
	return s.styleName(docxml.StyleTypeParagraph, id)
}

// TableStyleName returns the display name of a table style. An empty or
// unknown id resolves to the default table style.
func (s *StyleSheet) TableStyleName(id string) string {
	return s.styleName(docxml.StyleTypeTable, id)
}

func (s *StyleSheet) styleName(styleType, id string) string {
	if def, ok := s.byID[id]; ok && def.StyleType() == styleType {
		return displayName(def)
	}
	if def, ok := s.defaults[styleType]; ok {
		return displayName(def)
	}
	return defaultStyleName
}

func displayName(def *docxml.StyleDefinition) string {
	name := def.Name.String()
	if name == "" {
		return def.StyleID
	}
	if ui, ok := builtinStyleNames[name]; ok {
		return ui
	}
	return name
}
