package dataset

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/duochart/duochart/internal/model"
)

// ParseReader reads all of r and parses it like Parse, transparently
// decoding UTF-8, UTF-16LE, and UTF-16BE input and stripping any byte
// order mark. Spreadsheet applications routinely export CSV with a BOM,
// which would otherwise corrupt the first header field.
func ParseReader(r io.Reader) (model.ChartData, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return model.NewChartData(), fmt.Errorf("failed to read dataset: %w", err)
	}

	return Parse(string(data)), nil
}
