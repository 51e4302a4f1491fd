package docxjson

import (
	"strconv"
	"strings"

	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// lineSpacingUnit is the w:line value of single spacing under the auto rule
const lineSpacingUnit = 240

// paragraphFormat reads the layout formatting set directly on a paragraph
func paragraphFormat(pp *docxml.ParagraphProperties) ParagraphFormat {
	var f ParagraphFormat
	if pp == nil {
		return f
	}

	if jc := pp.Alignment.String(); jc != "" {
		f.Alignment = &jc
	}

	if v, ok := pp.Indentation.FirstLineTwips(); ok {
		f.FirstLineIndent = emu(v * emuPerTwip)
	}
	if v, ok := pp.Indentation.LeftTwips(); ok {
		f.LeftIndent = emu(v * emuPerTwip)
	}
	if v, ok := pp.Indentation.RightTwips(); ok {
		f.RightIndent = emu(v * emuPerTwip)
	}

	if line, rule, ok := pp.Spacing.LineValue(); ok {
		f.LineSpacing = lineSpacing(line, rule)
	}
	if v, ok := pp.Spacing.BeforeTwips(); ok {
		f.SpaceBefore = emu(v * emuPerTwip)
	}
	if v, ok := pp.Spacing.AfterTwips(); ok {
		f.SpaceAfter = emu(v * emuPerTwip)
	}

	f.KeepTogether = pp.KeepLines.Value()
	f.KeepWithNext = pp.KeepNext.Value()
	f.PageBreakBefore = pp.PageBreakBefore.Value()
	f.WidowControl = pp.WidowControl.Value()

	return f
}

// lineSpacing renders w:line. Under the auto rule it is a multiple of single
// spacing that always carries a fraction ("1.0", "1.5"); exact and at-least
// spacing are lengths in EMU. A zero w:line is nil.
func lineSpacing(line int, rule string) *string {
	if line == 0 {
		return nil
	}
	if rule == docxml.LineRuleAuto {
		s := strconv.FormatFloat(float64(line)/lineSpacingUnit, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return &s
	}
	return emu(line * emuPerTwip)
}
