package model

import "math"

// InsightRow is one derived row of the insights table: the raw metrics for
// a category plus its delta and its share of each metric's total.
type InsightRow struct {
	// Category is the row label.
	Category string `json:"category"`

	// Metric1 and Metric2 are the raw values.
	Metric1 float64 `json:"metric1"`
	Metric2 float64 `json:"metric2"`

	// Delta is Metric2 - Metric1.
	Delta float64 `json:"delta"`

	// Share1 and Share2 are the category's fraction of each metric's
	// total, in [0, 1]. Zero when the corresponding total is zero.
	Share1 float64 `json:"share1"`
	Share2 float64 `json:"share2"`
}

// Insights holds the derived statistics rendered by the report writers.
type Insights struct {
	// Title1 and Title2 carry the metric labels through to the report.
	Title1 string `json:"title1"`
	Title2 string `json:"title2"`

	// Rows are the per-category statistics in input order.
	Rows []InsightRow `json:"rows"`

	// Total1 and Total2 are the metric sums across all rows.
	Total1 float64 `json:"total1"`
	Total2 float64 `json:"total2"`
}

// NewInsights derives an Insights from imported chart data.
func NewInsights(cd ChartData) *Insights {
	ins := &Insights{
		Title1: cd.Title1,
		Title2: cd.Title2,
		Rows:   make([]InsightRow, 0, len(cd.Data)),
	}

	for _, dp := range cd.Data {
		ins.Total1 += dp.Metric1
		ins.Total2 += dp.Metric2
	}

	for _, dp := range cd.Data {
		row := InsightRow{
			Category: dp.Category,
			Metric1:  dp.Metric1,
			Metric2:  dp.Metric2,
			Delta:    dp.Metric2 - dp.Metric1,
		}
		if ins.Total1 > 0 {
			row.Share1 = dp.Metric1 / ins.Total1
		}
		if ins.Total2 > 0 {
			row.Share2 = dp.Metric2 / ins.Total2
		}
		ins.Rows = append(ins.Rows, row)
	}

	return ins
}

// TopMover returns the row with the largest absolute delta and true, or a
// zero row and false when there are no rows.
func (i *Insights) TopMover() (InsightRow, bool) {
	if len(i.Rows) == 0 {
		return InsightRow{}, false
	}
	top := i.Rows[0]
	for _, r := range i.Rows[1:] {
		if math.Abs(r.Delta) > math.Abs(top.Delta) {
			top = r
		}
	}
	return top, true
}
