package docxjson

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// EMU conversion factors
const (
	emuPerHalfPoint = 6350
	emuPerTwip      = 635
)

// fontProperties reads the formatting set directly on a run. It never fails:
// anything absent is reported as nil and an unreadable color is reported
// through ColorStatus.
func fontProperties(rp *docxml.RunProperties, log zerolog.Logger) FontProperties {
	props := FontProperties{ColorStatus: ColorUnset}
	if rp == nil {
		return props
	}

	props.Bold = rp.Bold.Value()
	props.Italic = rp.Italic.Value()
	props.Underline = rp.UnderlineValue()
	props.AllCaps = rp.Caps.Value()

	if size, ok := rp.SizeHalfPoints(); ok {
		props.FontSize = emu(size * emuPerHalfPoint)
	}
	if name := rp.Font.Name(); name != "" {
		props.FontName = &name
	}
	if hl := rp.Highlight.String(); hl != "" {
		props.HighlightColor = &hl
	}
	if rp.VerticalAlign != nil {
		sub := rp.VerticalAlign.Val == docxml.VertAlignSubscript
		sup := rp.VerticalAlign.Val == docxml.VertAlignSuperscript
		props.Subscript = &sub
		props.Superscript = &sup
	}

	rgb, status, err := resolveColor(rp.Color)
	if err != nil {
		log.Debug().Err(err).Msg("font color unresolved")
	}
	props.Color = rgb
	props.ColorStatus = status

	return props
}

// resolveColor turns a w:color element into an RRGGBB string. A color whose
// value is not six hex digits is reported as ColorUnresolved with the reason
// in err; the caller keeps going either way.
func resolveColor(c *docxml.Color) (rgb *string, status ColorStatus, err error) {
	if c == nil {
		return nil, ColorUnset, nil
	}
	val := strings.TrimSpace(c.Val)
	if strings.EqualFold(val, docxml.ColorAuto) {
		return nil, ColorAutomatic, nil
	}
	if len(val) != 6 {
		return nil, ColorUnresolved, fmt.Errorf("color value %q is not RRGGBB", c.Val)
	}
	if _, err := hex.DecodeString(val); err != nil {
		return nil, ColorUnresolved, fmt.Errorf("color value %q: %w", c.Val, err)
	}
	s := strings.ToUpper(val)
	return &s, ColorRGB, nil
}

// emu renders a length in EMU as a decimal string. A zero length is
// reported as nil, the same as an absent one.
func emu(v int) *string {
	if v == 0 {
		return nil
	}
	s := strconv.Itoa(v)
	return &s
}
