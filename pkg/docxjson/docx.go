package docxjson

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Well-known part names
const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// Relationship types read by the extractor
const (
	relTypeHeader = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
)

// DocxReader handles reading and parsing DOCX files
type DocxReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Relationship []Relationship `xml:"Relationship"`
}

// NewDocxReader creates a new DOCX reader
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &DocxReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	if _, ok := dr.Parts[documentPart]; !ok {
		return nil, ErrNotDocx
	}

	return dr, nil
}

// HasPart reports whether the package contains the named part
func (dr *DocxReader) HasPart(partName string) bool {
	_, ok := dr.Parts[partName]
	return ok
}

// GetPart retrieves the content of a specific part
func (dr *DocxReader) GetPart(partName string) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}

	return content, nil
}

// GetRelationships retrieves relationships for a given part
func (dr *DocxReader) GetRelationships(partName string) ([]Relationship, error) {
	// e.g., "word/document.xml" -> "word/_rels/document.xml.rels"
	dir, base := path.Split(partName)
	relPath := dir + "_rels/" + base + ".rels"

	if _, ok := dr.Parts[relPath]; !ok {
		// Missing relationships file is not an error, just return empty
		return []Relationship{}, nil
	}

	content, err := dr.GetPart(relPath)
	if err != nil {
		return nil, err
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}

	return rels.Relationship, nil
}

// ResolveTarget returns the part name a relationship of sourcePart points to.
// Targets are relative to the source part's directory unless they start
// with "/".
func ResolveTarget(sourcePart string, rel Relationship) string {
	if strings.HasPrefix(rel.Target, "/") {
		return strings.TrimPrefix(path.Clean(rel.Target), "/")
	}
	return path.Join(path.Dir(sourcePart), rel.Target)
}

// DocxReaderFromFile creates a DocxReader from a file path. A file that
// cannot be read yields an *IOError; one that is not a DOCX package yields a
// *DocumentReadError.
func DocxReaderFromFile(filePath string) (*DocxReader, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, NewIOError("read", filePath, err)
	}

	dr, err := NewDocxReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, NewDocumentReadError(filePath, "", err)
	}
	return dr, nil
}
