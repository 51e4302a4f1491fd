package xml

import "strings"

// Table represents a table in the document
type Table struct {
	Properties *TableProperties `xml:"tblPr"`
	Grid       *TableGrid       `xml:"tblGrid"`
	Rows       []TableRow       `xml:"tr"`
}

// isBodyElement implements the BodyElement interface
func (t Table) isBodyElement() {}

// StyleID returns the table's w:tblStyle id, or "" when none is set.
func (t *Table) StyleID() string {
	if t.Properties == nil {
		return ""
	}
	return t.Properties.Style.ID()
}

// GridColumns returns the number of w:gridCol entries, or 0 when the table
// has no grid.
func (t *Table) GridColumns() int {
	if t.Grid == nil {
		return 0
	}
	return len(t.Grid.Columns)
}

// TableGrid represents w:tblGrid, the column layout cells span over
type TableGrid struct {
	Columns []GridColumn `xml:"gridCol"`
}

// GridColumn represents w:gridCol
type GridColumn struct {
	Width string `xml:"w,attr"`
}

// TableProperties represents table formatting properties
type TableProperties struct {
	Style *Style `xml:"tblStyle"`
}

// TableRow represents a table row
type TableRow struct {
	Cells []TableCell `xml:"tc"`
}

// TableCell represents a table cell
type TableCell struct {
	Properties *TableCellProperties `xml:"tcPr"`
	Paragraphs []Paragraph          `xml:"p"`
}

// TableCellProperties represents cell properties
type TableCellProperties struct {
	GridSpan *StringVal `xml:"gridSpan"`
	VMerge   *StringVal `xml:"vMerge"`
}

// Span returns the number of grid columns the cell occupies (at least 1).
func (c *TableCell) Span() int {
	if c.Properties == nil || c.Properties.GridSpan == nil {
		return 1
	}
	if n, ok := parseInt(c.Properties.GridSpan.Val); ok && n > 1 {
		return n
	}
	return 1
}

// ContinuesVerticalMerge reports whether the cell continues a vertically
// merged cell from the row above. w:vMerge without a value means "continue".
func (c *TableCell) ContinuesVerticalMerge() bool {
	if c.Properties == nil || c.Properties.VMerge == nil {
		return false
	}
	return c.Properties.VMerge.Val == "" || c.Properties.VMerge.Val == "continue"
}

// GetText returns the cell paragraphs' text joined by line feeds
func (c *TableCell) GetText() string {
	texts := make([]string, len(c.Paragraphs))
	for i := range c.Paragraphs {
		texts[i] = c.Paragraphs[i].GetText()
	}
	return strings.Join(texts, "\n")
}
