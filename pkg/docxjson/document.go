package docxjson

import (
	"bytes"

	"github.com/rs/zerolog"

	docxml "github.com/benjaminschreck/docxjson/pkg/docxjson/xml"
)

// wordDocument is an opened DOCX package: the parsed main document, its
// style sheet and access to the header parts its sections reference.
type wordDocument struct {
	path     string
	reader   *DocxReader
	document *docxml.Document
	styles   *StyleSheet
	rels     map[string]Relationship
	headers  map[string]*docxml.Header
	log      zerolog.Logger
}

// openDocument parses the main document part and the style sheet
func openDocument(path string, dr *DocxReader, log zerolog.Logger) (*wordDocument, error) {
	content, err := dr.GetPart(documentPart)
	if err != nil {
		return nil, NewDocumentReadError(path, documentPart, err)
	}
	doc, err := docxml.ParseDocument(bytes.NewReader(content))
	if err != nil {
		return nil, NewDocumentReadError(path, documentPart, err)
	}

	rels, err := dr.GetRelationships(documentPart)
	if err != nil {
		return nil, NewDocumentReadError(path, documentPart, err)
	}

	wd := &wordDocument{
		path:     path,
		reader:   dr,
		document: doc,
		rels:     make(map[string]Relationship, len(rels)),
		headers:  make(map[string]*docxml.Header),
		log:      log,
	}
	for _, rel := range rels {
		wd.rels[rel.ID] = rel
	}

	styles, err := wd.loadStyles()
	if err != nil {
		return nil, err
	}
	wd.styles = NewStyleSheet(styles)

	return wd, nil
}

// loadStyles parses the styles part named by the document relationships,
// falling back to word/styles.xml. A package without styles is valid.
func (wd *wordDocument) loadStyles() (*docxml.Styles, error) {
	part := ""
	for _, rel := range wd.rels {
		if rel.Type == relTypeStyles {
			part = ResolveTarget(documentPart, rel)
			break
		}
	}
	if part == "" || !wd.reader.HasPart(part) {
		part = stylesPart
	}
	if !wd.reader.HasPart(part) {
		wd.log.Debug().Msg("package has no styles part")
		return nil, nil
	}

	content, err := wd.reader.GetPart(part)
	if err != nil {
		return nil, NewDocumentReadError(wd.path, part, err)
	}
	styles, err := docxml.ParseStyles(bytes.NewReader(content))
	if err != nil {
		return nil, NewDocumentReadError(wd.path, part, err)
	}
	return styles, nil
}

// header returns the header part behind a relationship id. ok is false when
// the relationship does not point at a header part in the package.
func (wd *wordDocument) header(relID string) (hdr *docxml.Header, ok bool, err error) {
	if hdr, ok := wd.headers[relID]; ok {
		return hdr, true, nil
	}

	rel, found := wd.rels[relID]
	if !found || rel.Type != relTypeHeader || rel.TargetMode == "External" {
		return nil, false, nil
	}
	part := ResolveTarget(documentPart, rel)
	if !wd.reader.HasPart(part) {
		wd.log.Warn().Str("part", part).Str("rel", relID).Msg("header part missing from package")
		return nil, false, nil
	}

	content, err := wd.reader.GetPart(part)
	if err != nil {
		return nil, false, NewDocumentReadError(wd.path, part, err)
	}
	hdr, err = docxml.ParseHeader(bytes.NewReader(content))
	if err != nil {
		return nil, false, NewDocumentReadError(wd.path, part, err)
	}
	wd.headers[relID] = hdr
	return hdr, true, nil
}

// sectionHeaders returns the default header of every section in order. A
// section without a default header of its own shows the previous section's,
// so that header is repeated for it; sections before the first header
// contribute nothing.
func (wd *wordDocument) sectionHeaders() ([]*docxml.Header, error) {
	var (
		headers []*docxml.Header
		last    *docxml.Header
	)
	for _, sect := range wd.document.Sections() {
		if id, ok := sect.DefaultHeaderID(); ok {
			hdr, found, err := wd.header(id)
			if err != nil {
				return nil, err
			}
			if found {
				last = hdr
			}
		}
		if last != nil {
			headers = append(headers, last)
		}
	}
	return headers, nil
}
