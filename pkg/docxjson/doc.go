// Package docxjson extracts text and formatting metadata from Microsoft Word
// documents (DOCX) into a structured record that serializes to JSON or YAML.
//
// The extractor makes one pass over a document: the paragraphs of each
// section's header, then the body paragraphs, then the body tables. Each
// non-empty paragraph becomes a ParagraphRecord carrying its style name, the
// layout formatting set on it and its runs with their character formatting.
//
// # Quick Start
//
//	content, err := docxjson.Extract("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := docxjson.Encode(os.Stdout, content, docxjson.FormatJSON, 4); err != nil {
//	    log.Fatal(err)
//	}
//
// # Output Shape
//
//	{
//	    "paragraphs": [...],     // non-list body paragraphs
//	    "tables": [...],         // tables with at least one non-empty cell
//	    "headers": [...],        // header paragraphs, section by section
//	    "document_name": "report.docx",
//	    "lists": [[...], [...]]  // one group per run of consecutive list items
//	}
//
// Formatting is reported only as far as the document sets it directly on a
// paragraph or run; nothing is inherited from styles. Every property that is
// not set is null, so on/off properties are tri-state. Lengths are EMU
// values written as decimal strings (12pt is "152400").
//
// A font color that is present but unreadable does not fail the extraction:
// color is null and color_status is "unresolved". color_status separates
// that case from "unset" and "auto".
//
// # Lists
//
// A paragraph is a list item when its style name starts with "List" or when
// it carries its own numbering properties. Consecutive list items in the
// body form one group; any non-list paragraph with text ends the group.
// Empty paragraphs and tables do not.
//
// # Batch Conversion
//
// Batch converts every matching file of a directory, writing a sibling
// output file per document and reporting progress through a Reporter. A
// failing document is reported and skipped. The docxjson command wraps it.
//
// # Configuration
//
// LoadConfig reads defaults, an optional config file and DOCXJSON_*
// environment variables (DOCXJSON_DIR, DOCXJSON_EXTENSION, DOCXJSON_FORMAT,
// DOCXJSON_INDENT, DOCXJSON_LOG_LEVEL, DOCXJSON_NO_COLOR). A .env file in the
// working directory is honoured.
package docxjson
