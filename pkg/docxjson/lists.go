package docxjson

import (
	"strings"

	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// listStylePrefix marks list paragraph styles ("List Bullet", "List Paragraph", ...)
const listStylePrefix = "List"

// isListItem reports whether a paragraph belongs to a list: its style name
// starts with "List" (case-sensitive) or it carries its own numbering.
func isListItem(styleName string, pp *docxml.ParagraphProperties) bool {
	if strings.HasPrefix(styleName, listStylePrefix) {
		return true
	}
	return pp != nil && pp.Numbering.IsNumbered()
}

// listLevel returns the paragraph's w:ilvl, or nil when the
// pPr/numPr/ilvl/val chain is incomplete.
func listLevel(pp *docxml.ParagraphProperties) *int {
	if pp == nil {
		return nil
	}
	level, ok := pp.Numbering.ListLevel()
	if !ok {
		return nil
	}
	return &level
}

// groupLists splits body paragraphs, in document order, into the non-list
// paragraphs and the list groups. Each maximal run of consecutive list
// items forms one group; a non-list paragraph closes the open group.
func groupLists(paras []ParagraphRecord) (plain []ParagraphRecord, groups [][]ParagraphRecord) {
	plain = []ParagraphRecord{}
	groups = [][]ParagraphRecord{}

	var current []ParagraphRecord
	for _, p := range paras {
		if p.IsListItem {
			current = append(current, p)
			continue
		}
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		plain = append(plain, p)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return plain, groups
}
