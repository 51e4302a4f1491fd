package docxjson

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + nsW + `">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style>
  <w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/></w:style>
  <w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/></w:style>
  <w:style w:type="paragraph" w:styleId="Lister"><w:name w:val="listing"/></w:style>
  <w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont"><w:name w:val="Default Paragraph Font"/></w:style>
  <w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/></w:style>
  <w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/></w:style>
</w:styles>`

// docxBuilder assembles an in-memory DOCX package for tests
type docxBuilder struct {
	body    string
	styles  string
	headers map[string]string // relationship id -> header body
}

func newDocx(body string) *docxBuilder {
	return &docxBuilder{body: body, styles: testStylesXML, headers: map[string]string{}}
}

func (b *docxBuilder) withoutStyles() *docxBuilder {
	b.styles = ""
	return b
}

func (b *docxBuilder) withHeader(relID, content string) *docxBuilder {
	b.headers[relID] = content
	return b
}

func (b *docxBuilder) bytes(t *testing.T) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	add := func(name, content string) {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}

	add("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)
	add("word/document.xml", fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s" xmlns:r="%s"><w:body>%s</w:body></w:document>`, nsW, nsR, b.body))

	rels := ""
	if b.styles != "" {
		add("word/styles.xml", b.styles)
		rels += `<Relationship Id="rIdStyles" Type="` + relTypeStyles + `" Target="styles.xml"/>`
	}
	i := 0
	for id, content := range b.headers {
		i++
		name := fmt.Sprintf("header%d.xml", i)
		add("word/"+name, fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:hdr xmlns:w="%s" xmlns:r="%s">%s</w:hdr>`, nsW, nsR, content))
		rels += `<Relationship Id="` + id + `" Type="` + relTypeHeader + `" Target="` + name + `"/>`
	}
	add("word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`+rels+`</Relationships>`)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeTo stores the package as dir/name and returns its path
func (b *docxBuilder) writeTo(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, b.bytes(t), 0o644))
	return path
}

// emptyZip returns a valid ZIP archive without any DOCX parts
func emptyZip(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	f, err := w.Create("readme.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// para builds a paragraph with an optional style id and plain runs
func para(styleID string, texts ...string) string {
	p := "<w:p>"
	if styleID != "" {
		p += `<w:pPr><w:pStyle w:val="` + styleID + `"/></w:pPr>`
	}
	for _, text := range texts {
		p += `<w:r><w:t xml:space="preserve">` + text + `</w:t></w:r>`
	}
	return p + "</w:p>"
}

// cell builds a table cell holding one paragraph per text
func cell(texts ...string) string {
	c := "<w:tc>"
	for _, text := range texts {
		c += para("", text)
	}
	if len(texts) == 0 {
		c += "<w:p/>"
	}
	return c + "</w:tc>"
}

func row(cells ...string) string {
	r := "<w:tr>"
	for _, c := range cells {
		r += c
	}
	return r + "</w:tr>"
}

// grid builds a w:tblGrid of n columns; pass it to table before the rows
func grid(n int) string {
	g := "<w:tblGrid>"
	for i := 0; i < n; i++ {
		g += `<w:gridCol w:w="1000"/>`
	}
	return g + "</w:tblGrid>"
}

func table(styleID string, rows ...string) string {
	t := "<w:tbl>"
	if styleID != "" {
		t += `<w:tblPr><w:tblStyle w:val="` + styleID + `"/></w:tblPr>`
	}
	for _, r := range rows {
		t += r
	}
	return t + "</w:tbl>"
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
