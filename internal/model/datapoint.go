package model

// DataPoint is one row of the imported dataset: a category name and its
// two metric values.
//
// Both metrics are finite: the parser rejects NaN and infinity upstream.
// Negative values are accepted and collapse to zero-radius circles in the
// layout's circle-area mapping.
type DataPoint struct {
	// Category is the row label. It is never empty in a parsed dataset;
	// the parser drops rows without a category.
	Category string `json:"category"`

	// Metric1 is the value plotted on the left chart.
	Metric1 float64 `json:"metric1"`

	// Metric2 is the value plotted on the right chart.
	Metric2 float64 `json:"metric2"`
}

// ChartData is the normalized result of a CSV import: two metric labels
// and the parsed rows.
//
// A ChartData is created fresh on every import and replaces the current
// dataset wholesale. There is no merge path.
type ChartData struct {
	// Title1 is the label of the first metric, taken from the CSV header
	// or defaulted to "Metric 1".
	Title1 string `json:"title1"`

	// Title2 is the label of the second metric, taken from the CSV header
	// or defaulted to "Metric 2".
	Title2 string `json:"title2"`

	// Data holds the parsed rows in input order.
	Data []DataPoint `json:"data"`
}

// DefaultTitle1 and DefaultTitle2 are the metric labels used when the CSV
// input has no usable header fields.
const (
	DefaultTitle1 = "Metric 1"
	DefaultTitle2 = "Metric 2"
)

// NewChartData returns an empty ChartData with default metric labels.
func NewChartData() ChartData {
	return ChartData{
		Title1: DefaultTitle1,
		Title2: DefaultTitle2,
		Data:   []DataPoint{},
	}
}
