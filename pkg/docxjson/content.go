package docxjson

// DocumentContent is the structured representation of one document. Field
// order is the key order of the serialized output.
type DocumentContent struct {
	Paragraphs   []ParagraphRecord   `json:"paragraphs" yaml:"paragraphs"`
	Tables       []TableRecord       `json:"tables" yaml:"tables"`
	Headers      []ParagraphRecord   `json:"headers" yaml:"headers"`
	DocumentName string              `json:"document_name" yaml:"document_name"`
	Lists        [][]ParagraphRecord `json:"lists" yaml:"lists"`
}

// ParagraphRecord is one non-empty paragraph
type ParagraphRecord struct {
	Text       string          `json:"text" yaml:"text"`
	StyleName  string          `json:"style_name" yaml:"style_name"`
	Formatting ParagraphFormat `json:"formatting" yaml:"formatting"`
	Runs       []RunRecord     `json:"runs" yaml:"runs"`
	IsListItem bool            `json:"is_list_item" yaml:"is_list_item"`
	ListLevel  *int            `json:"list_level" yaml:"list_level"`
}

// RunRecord is one styled span of text within a paragraph
type RunRecord struct {
	Text           string         `json:"text" yaml:"text"`
	FontProperties FontProperties `json:"font_properties" yaml:"font_properties"`
}

// ColorStatus explains the value of FontProperties.Color
type ColorStatus string

const (
	// ColorUnset means the run sets no color
	ColorUnset ColorStatus = "unset"
	// ColorRGB means Color holds the resolved RRGGBB value
	ColorRGB ColorStatus = "rgb"
	// ColorAutomatic means the run uses Word's automatic color
	ColorAutomatic ColorStatus = "auto"
	// ColorUnresolved means a color is set but its value could not be read
	ColorUnresolved ColorStatus = "unresolved"
)

// FontProperties is the character formatting set directly on a run. Pointer
// fields are nil when the run does not set the property.
type FontProperties struct {
	Bold           *bool       `json:"bold" yaml:"bold"`
	Italic         *bool       `json:"italic" yaml:"italic"`
	Underline      *bool       `json:"underline" yaml:"underline"`
	FontSize       *string     `json:"font_size" yaml:"font_size"`
	FontName       *string     `json:"font_name" yaml:"font_name"`
	AllCaps        *bool       `json:"all_caps" yaml:"all_caps"`
	Color          *string     `json:"color" yaml:"color"`
	ColorStatus    ColorStatus `json:"color_status" yaml:"color_status"`
	HighlightColor *string     `json:"highlight_color" yaml:"highlight_color"`
	Subscript      *bool       `json:"subscript" yaml:"subscript"`
	Superscript    *bool       `json:"superscript" yaml:"superscript"`
}

// ParagraphFormat is the layout formatting set directly on a paragraph.
// Lengths are EMU values rendered as decimal strings.
type ParagraphFormat struct {
	Alignment       *string `json:"alignment" yaml:"alignment"`
	FirstLineIndent *string `json:"first_line_indent" yaml:"first_line_indent"`
	LeftIndent      *string `json:"left_indent" yaml:"left_indent"`
	RightIndent     *string `json:"right_indent" yaml:"right_indent"`
	LineSpacing     *string `json:"line_spacing" yaml:"line_spacing"`
	SpaceBefore     *string `json:"space_before" yaml:"space_before"`
	SpaceAfter      *string `json:"space_after" yaml:"space_after"`
	KeepTogether    *bool   `json:"keep_together" yaml:"keep_together"`
	KeepWithNext    *bool   `json:"keep_with_next" yaml:"keep_with_next"`
	PageBreakBefore *bool   `json:"page_break_before" yaml:"page_break_before"`
	WidowControl    *bool   `json:"widow_control" yaml:"widow_control"`
}

// TableRecord is one table with at least one non-empty cell
type TableRecord struct {
	Style string         `json:"style" yaml:"style"`
	Rows  [][]CellRecord `json:"rows" yaml:"rows"`
}

// CellRecord is one table cell
type CellRecord struct {
	Text       string            `json:"text" yaml:"text"`
	Paragraphs []ParagraphRecord `json:"paragraphs" yaml:"paragraphs"`
}

// newDocumentContent returns an empty record whose lists serialize as []
// rather than null.
func newDocumentContent(name string) *DocumentContent {
	return &DocumentContent{
		Paragraphs:   []ParagraphRecord{},
		Tables:       []TableRecord{},
		Headers:      []ParagraphRecord{},
		DocumentName: name,
		Lists:        [][]ParagraphRecord{},
	}
}
