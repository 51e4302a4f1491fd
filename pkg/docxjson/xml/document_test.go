package xml

import (
	"encoding/xml"
	"strings"
	"testing"
)

const testNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

func parseBody(t *testing.T, body string) *Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(`<w:document ` + testNamespaces + `><w:body>` + body + `</w:body></w:document>`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	return doc
}

func TestParseDocument_ElementOrder(t *testing.T) {
	doc := parseBody(t, `<w:p><w:r><w:t>one</w:t></w:r></w:p>`+
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
		`<w:sdt><w:sdtContent><w:p><w:r><w:t>skipped</w:t></w:r></w:p></w:sdtContent></w:sdt>`+
		`<w:p><w:r><w:t>two</w:t></w:r></w:p>`+
		`<w:sectPr/>`)

	if len(doc.Body.Elements) != 3 {
		t.Fatalf("expected 3 body elements, got %d", len(doc.Body.Elements))
	}
	if _, ok := doc.Body.Elements[1].(*Table); !ok {
		t.Errorf("expected table as second element, got %T", doc.Body.Elements[1])
	}

	paras := doc.Body.Paragraphs()
	if len(paras) != 2 || paras[0].GetText() != "one" || paras[1].GetText() != "two" {
		t.Errorf("unexpected paragraphs: %+v", paras)
	}
	if tables := doc.Body.Tables(); len(tables) != 1 {
		t.Errorf("expected 1 table, got %d", len(tables))
	}
	if doc.Body.SectionProperties == nil {
		t.Error("expected body section properties")
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed paragraph", `<w:document ` + testNamespaces + `><w:body><w:p><w:r><w:t>x</w:t></w:r>`},
		{"mismatched tags", `<w:document ` + testNamespaces + `><w:body><w:p></w:body></w:document>`},
		{"not xml", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDocument(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDocument_Sections(t *testing.T) {
	doc := parseBody(t, `<w:p><w:pPr><w:sectPr><w:headerReference w:type="default" r:id="rId1"/></w:sectPr></w:pPr></w:p>`+
		`<w:p><w:r><w:t>second</w:t></w:r></w:p>`+
		`<w:sectPr><w:headerReference w:type="even" r:id="rId2"/><w:headerReference r:id="rId3"/></w:sectPr>`)

	sections := doc.Sections()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}

	tests := []struct {
		section *SectionProperties
		wantID  string
		wantOK  bool
	}{
		{sections[0], "rId1", true},
		{sections[1], "rId3", true},
		{nil, "", false},
		{&SectionProperties{HeaderReferences: []HeaderReference{{Type: "first", ID: "rId4"}}}, "", false},
	}
	for i, tt := range tests {
		id, ok := tt.section.DefaultHeaderID()
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("case %d: DefaultHeaderID() = %q, %v; want %q, %v", i, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestDocument_NilSafe(t *testing.T) {
	var doc *Document
	if doc.Sections() != nil {
		t.Error("expected nil sections for nil document")
	}
	var body *Body
	if body.Paragraphs() != nil || body.Tables() != nil {
		t.Error("expected nil content for nil body")
	}
}

func TestParseHeader(t *testing.T) {
	hdr, err := ParseHeader(strings.NewReader(`<w:hdr ` + testNamespaces + `>` +
		`<w:p><w:r><w:t>Title</w:t></w:r></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p/></w:tc></w:tr></w:tbl>` +
		`<w:p/></w:hdr>`))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	paras := hdr.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("expected 2 header paragraphs, got %d", len(paras))
	}
	if got := paras[0].GetText(); got != "Title" {
		t.Errorf("GetText() = %q, want Title", got)
	}
}

func TestParseStyles(t *testing.T) {
	styles, err := ParseStyles(strings.NewReader(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:docDefaults/>` +
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
		`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/></w:style>` +
		`</w:styles>`))
	if err != nil {
		t.Fatalf("ParseStyles() error = %v", err)
	}
	if len(styles.Styles) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(styles.Styles))
	}

	normal := styles.Styles[0]
	if normal.StyleID != "Normal" || normal.Type != StyleTypeParagraph || !normal.IsDefault() || normal.Name.String() != "Normal" {
		t.Errorf("unexpected Normal style: %+v", normal)
	}
	grid := styles.Styles[1]
	if grid.Type != StyleTypeTable || grid.IsDefault() || grid.Name.String() != "Table Grid" {
		t.Errorf("unexpected TableGrid style: %+v", grid)
	}
}

func TestStyleDefinition_StyleType(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"", StyleTypeParagraph},
		{StyleTypeParagraph, StyleTypeParagraph},
		{StyleTypeCharacter, StyleTypeCharacter},
		{StyleTypeTable, StyleTypeTable},
	}
	for _, tt := range tests {
		s := StyleDefinition{Type: tt.typ}
		if got := s.StyleType(); got != tt.want {
			t.Errorf("StyleType() with %q = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestStyleDefinition_IsDefault(t *testing.T) {
	for val, want := range map[string]bool{"": false, "0": false, "false": false, "1": true, "true": true, "on": true} {
		s := StyleDefinition{Default: val}
		if got := s.IsDefault(); got != want {
			t.Errorf("IsDefault() with %q = %v, want %v", val, got, want)
		}
	}
}

func TestOnOff_Value(t *testing.T) {
	str := func(s string) *string { return &s }
	tests := []struct {
		name  string
		onOff *OnOff
		want  *bool
	}{
		{"absent", nil, nil},
		{"present without value", &OnOff{}, boolPtr(true)},
		{"true", &OnOff{Val: str("true")}, boolPtr(true)},
		{"1", &OnOff{Val: str("1")}, boolPtr(true)},
		{"on", &OnOff{Val: str("on")}, boolPtr(true)},
		{"false", &OnOff{Val: str("false")}, boolPtr(false)},
		{"0", &OnOff{Val: str("0")}, boolPtr(false)},
		{"off", &OnOff{Val: str("Off")}, boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.onOff.Value()
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("Value() = %v, want %v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("Value() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestOnOff_Unmarshal(t *testing.T) {
	var rp RunProperties
	input := `<w:rPr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:b/><w:i w:val="0"/></w:rPr>`
	if err := xml.Unmarshal([]byte(input), &rp); err != nil {
		t.Fatal(err)
	}
	if v := rp.Bold.Value(); v == nil || !*v {
		t.Errorf("expected bold true, got %v", v)
	}
	if v := rp.Italic.Value(); v == nil || *v {
		t.Errorf("expected italic false, got %v", v)
	}
	if rp.Caps.Value() != nil {
		t.Error("expected caps unset")
	}
}

func boolPtr(b bool) *bool { return &b }
