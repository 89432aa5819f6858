package report

import (
	"encoding/json"
	"io"

	"github.com/duochart/duochart/internal/model"
)

// JSONWriter outputs insights as indented JSON, suitable for piping into
// other tooling.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the insights as JSON.
func (w *JSONWriter) Write(ins *model.Insights) (int, error) {
	data, err := json.MarshalIndent(ins, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
