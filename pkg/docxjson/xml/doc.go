// Package xml provides the read-only WordprocessingML structures docxjson
// decodes from a DOCX package.
//
// A DOCX file is a ZIP archive of XML parts. This package models the parts the
// extractor walks:
//
//   - document.go: Document and Body (word/document.xml)
//   - header.go: Header parts (word/header*.xml)
//   - section.go: section properties and their header references
//   - paragraph.go: Paragraph, Hyperlink and paragraph properties
//   - run.go: Run, its text content and run properties
//   - table.go: Table, TableRow, TableCell
//   - styles.go: style definitions (word/styles.xml)
//
// # Key Concepts
//
// BodyElement: Top-level elements of a body or header (paragraphs, tables).
//
// ParagraphContent: Elements inside a paragraph that carry text (runs, hyperlinks).
//
// Run: A contiguous sequence of text with consistent formatting.
//
// # Optional properties
//
// Most formatting in WordprocessingML is optional, and an absent element means
// "inherit". Property structs are therefore held as pointers, and attribute
// values are kept as strings and read through typed accessors that report
// whether a usable value is present:
//
//	if size, ok := run.Properties.SizeHalfPoints(); ok {
//	    // size is in half-points
//	}
//
// Accessors are safe on nil receivers.
//
// # XML Namespaces
//
// Elements and attributes are matched by local name only. The w: namespace is
// the only one the extractor reads, and matching by local name keeps decoding
// independent of the prefix a producer chose.
package xml
