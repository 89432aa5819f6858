package report

import (
	"io"

	"github.com/duochart/duochart/internal/model"
)

// Writer defines the interface for insights output. Implementations
// serialize the derived statistics in one format.
//
// The interface mirrors io.Writer's byte-count convention but writes a
// whole report, which lets MultiWriter fan one report out to terminal and
// file in a single call.
type Writer interface {
	// Write outputs the insights to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(ins *model.Insights) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, stopping on the
// first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the insights to all configured Writers and returns the
// total bytes written across them.
func (m *MultiWriter) Write(ins *model.Insights) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(ins)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
