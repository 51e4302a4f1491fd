package docxjson

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// Extractor turns DOCX documents into DocumentContent records
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor creates an extractor that logs through the package logger
func NewExtractor() *Extractor {
	return &Extractor{log: *GetLogger()}
}

// WithLogger returns a copy of the extractor that logs to l
func (e *Extractor) WithLogger(l zerolog.Logger) *Extractor {
	return &Extractor{log: l}
}

// Extract reads the document at path with a default extractor
func Extract(path string) (*DocumentContent, error) {
	return NewExtractor().Extract(path)
}

// Extract reads the document at path. It fails with *IOError when the file
// cannot be read and *DocumentReadError when it is not a readable DOCX.
func (e *Extractor) Extract(path string) (*DocumentContent, error) {
	dr, err := DocxReaderFromFile(path)
	if err != nil {
		return nil, err
	}
	return e.extract(path, dr)
}

// ExtractReader reads a DOCX package held in r. name becomes the
// document_name of the result.
func (e *Extractor) ExtractReader(name string, r io.ReaderAt, size int64) (*DocumentContent, error) {
	dr, err := NewDocxReader(r, size)
	if err != nil {
		return nil, NewDocumentReadError(name, "", err)
	}
	return e.extract(name, dr)
}

// ExtractBytes reads a DOCX package held in memory
func (e *Extractor) ExtractBytes(name string, content []byte) (*DocumentContent, error) {
	return e.ExtractReader(name, bytes.NewReader(content), int64(len(content)))
}

func (e *Extractor) extract(path string, dr *DocxReader) (*DocumentContent, error) {
	log := e.log.With().Str("document", filepath.Base(path)).Logger()

	wd, err := openDocument(path, dr, log)
	if err != nil {
		return nil, err
	}

	content := newDocumentContent(filepath.Base(path))

	headers, err := wd.sectionHeaders()
	if err != nil {
		return nil, err
	}
	for _, hdr := range headers {
		for _, p := range hdr.Paragraphs() {
			if rec, ok := e.extractParagraph(wd, p); ok {
				content.Headers = append(content.Headers, rec)
			}
		}
	}

	var body []ParagraphRecord
	for _, p := range wd.document.Body.Paragraphs() {
		if rec, ok := e.extractParagraph(wd, p); ok {
			body = append(body, rec)
		}
	}
	content.Paragraphs, content.Lists = groupLists(body)

	for _, t := range wd.document.Body.Tables() {
		record, ok := e.extractTable(wd, t)
		if !ok {
			log.Debug().Int("rows", len(t.Rows)).Msg("dropping table without text")
			continue
		}
		content.Tables = append(content.Tables, record)
	}

	log.Debug().
		Int("headers", len(content.Headers)).
		Int("paragraphs", len(content.Paragraphs)).
		Int("lists", len(content.Lists)).
		Int("tables", len(content.Tables)).
		Msg("document extracted")

	return content, nil
}

// extractParagraph builds the record of one paragraph. ok is false for a
// paragraph with no non-whitespace text.
func (e *Extractor) extractParagraph(wd *wordDocument, p *docxml.Paragraph) (record ParagraphRecord, ok bool) {
	text := strings.TrimSpace(p.GetText())
	if text == "" {
		return ParagraphRecord{}, false
	}

	styleName := wd.styles.ParagraphStyleName(p.StyleID())
	record = ParagraphRecord{
		Text:       text,
		StyleName:  styleName,
		Formatting: paragraphFormat(p.Properties),
		Runs:       []RunRecord{},
		IsListItem: isListItem(styleName, p.Properties),
		ListLevel:  listLevel(p.Properties),
	}

	for _, run := range p.Runs() {
		runText := run.GetText()
		if strings.TrimSpace(runText) == "" {
			continue
		}
		record.Runs = append(record.Runs, RunRecord{
			Text:           runText,
			FontProperties: fontProperties(run.Properties, wd.log),
		})
	}

	return record, true
}
