package docxjson

import (
	"strings"

	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// extractTable builds the record of one table. ok is false when every cell
// is empty, in which case the table is left out of the output.
func (e *Extractor) extractTable(wd *wordDocument, table *docxml.Table) (record TableRecord, ok bool) {
	record = TableRecord{
		Style: wd.styles.TableStyleName(table.StyleID()),
		Rows:  make([][]CellRecord, 0, len(table.Rows)),
	}

	var above []CellRecord
	for _, row := range table.Rows {
		cells := e.extractRow(wd, row, table.GridColumns(), above)
		for _, c := range cells {
			if c.Text != "" {
				ok = true
			}
		}
		record.Rows = append(record.Rows, cells)
		above = cells
	}
	return record, ok
}

// extractRow lays a row's cells out on the table grid. A cell spanning n
// grid columns appears n times, and a cell continuing a vertical merge
// repeats the cell in the same grid column of the row above. Spans are
// clamped to the grid columns left for the cell; without a grid the row's
// own cell count is the width.
func (e *Extractor) extractRow(wd *wordDocument, row docxml.TableRow, gridColumns int, above []CellRecord) []CellRecord {
	width := gridColumns
	if width < len(row.Cells) {
		width = len(row.Cells)
	}

	cells := make([]CellRecord, 0, len(row.Cells))
	for i := range row.Cells {
		tc := &row.Cells[i]
		col := len(cells)

		var cell CellRecord
		if tc.ContinuesVerticalMerge() && col < len(above) {
			cell = above[col]
		} else {
			cell = e.extractCell(wd, tc)
		}

		// every later cell keeps at least one column
		span := tc.Span()
		if limit := width - col - (len(row.Cells) - i - 1); span > limit {
			span = max(limit, 1)
		}
		for n := span; n > 0; n-- {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (e *Extractor) extractCell(wd *wordDocument, tc *docxml.TableCell) CellRecord {
	cell := CellRecord{
		Text:       strings.TrimSpace(tc.GetText()),
		Paragraphs: []ParagraphRecord{},
	}
	for i := range tc.Paragraphs {
		if rec, ok := e.extractParagraph(wd, &tc.Paragraphs[i]); ok {
			cell.Paragraphs = append(cell.Paragraphs, rec)
		}
	}
	return cell
}
