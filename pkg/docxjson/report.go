package docxjson

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// Reporter prints batch progress for the person running the tool
type Reporter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	notice  *color.Color
}

// NewReporter creates a reporter writing to out. With colored false all
// output is plain text.
func NewReporter(out io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.success, r.failure, r.notice} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// NoFiles reports that dir holds no input documents
func (r *Reporter) NoFiles(ext, dir string) {
	if filepath.Clean(dir) == "." {
		r.notice.Fprintf(r.out, "No %s files found in the current directory\n", ext)
		return
	}
	r.notice.Fprintf(r.out, "No %s files found in %s\n", ext, dir)
}

// Processing reports the start of a document
func (r *Reporter) Processing(name string) {
	fmt.Fprintf(r.out, "Processing %s...\n", name)
}

// Created reports a written output file
func (r *Reporter) Created(name string) {
	r.success.Fprintf(r.out, "Successfully created %s\n", name)
}

// Failed reports a document that could not be converted, with the error
// chain's innermost cause as detail.
func (r *Reporter) Failed(name string, err error) {
	r.failure.Fprintf(r.out, "Error processing %s: %v\n", name, err)
	cause := rootCause(err)
	fmt.Fprintf(r.out, "Full error details: %T: %v\n", cause, cause)
}

// Summary reports the totals of a batch
func (r *Reporter) Summary(s Summary) {
	fmt.Fprintf(r.out, "Processed %d file(s): %d succeeded, %d failed\n", s.Found, s.Succeeded, s.Failed)
}

func rootCause(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		next := u.Unwrap()
		if next == nil {
			return err
		}
		err = next
	}
}
