package docxjson

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Summary counts the outcome of a batch run
type Summary struct {
	Found     int
	Succeeded int
	Failed    int
}

// Batch converts every matching document in a directory, one at a time
type Batch struct {
	config    *Config
	format    Format
	extractor *Extractor
	reporter  *Reporter
	log       zerolog.Logger
}

// NewBatch creates a batch driver for cfg reporting progress to reporter
func NewBatch(cfg *Config, reporter *Reporter) (*Batch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = NewReporter(io.Discard, false)
	}
	log := *GetLogger()
	return &Batch{
		config:    cfg,
		format:    cfg.OutputFormat(),
		extractor: NewExtractor().WithLogger(log),
		reporter:  reporter,
		log:       log,
	}, nil
}

// Run converts the matching documents. A document that fails is reported
// and skipped; the returned error is non-nil only when the directory cannot
// be listed.
func (b *Batch) Run() (Summary, error) {
	var summary Summary

	files, err := b.findDocuments()
	if err != nil {
		return summary, err
	}
	summary.Found = len(files)

	if len(files) == 0 {
		b.reporter.NoFiles(b.config.Extension, b.config.Dir)
		return summary, nil
	}

	for _, name := range files {
		b.reporter.Processing(name)
		out, err := b.convert(name)
		if err != nil {
			summary.Failed++
			b.log.Error().Err(err).Str("file", name).Msg("conversion failed")
			b.reporter.Failed(name, err)
			continue
		}
		summary.Succeeded++
		b.reporter.Created(out)
	}

	b.log.Debug().
		Int("found", summary.Found).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("batch finished")
	return summary, nil
}

// findDocuments lists the regular files in the configured directory whose
// names end with the configured extension, ignoring case.
func (b *Batch) findDocuments() ([]string, error) {
	entries, err := os.ReadDir(b.config.Dir)
	if err != nil {
		return nil, NewIOError("list", b.config.Dir, err)
	}

	ext := strings.ToLower(b.config.Extension)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ext) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// convert extracts one document and writes its sibling output file,
// returning the output file name.
func (b *Batch) convert(name string) (string, error) {
	content, err := b.extractor.Extract(filepath.Join(b.config.Dir, name))
	if err != nil {
		return "", err
	}

	outName := OutputName(name, b.format)
	outPath := filepath.Join(b.config.Dir, outName)
	if err := writeOutput(outPath, content, b.format, b.config.Indent); err != nil {
		return "", err
	}
	return outName, nil
}

func writeOutput(path string, content *DocumentContent, format Format, indent int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return NewIOError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = NewIOError("close", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, content, format, indent); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return NewIOError("write", path, err)
	}
	return nil
}
