package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/duochart/duochart/internal/model"
)

// MarkdownWriter outputs insights as GitHub Flavored Markdown, designed
// for pasting into documentation or pull requests alongside the exported
// charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the insights report in Markdown format.
func (w *MarkdownWriter) Write(ins *model.Insights) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Insights")
	md.PlainText("")

	if len(ins.Rows) == 0 {
		md.PlainText("No data rows imported.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	w.writeTable(md, ins)
	w.writeShareChart(md, ins)
	w.writeTopMover(md, ins)

	return len(md.String()), md.Build()
}

// writeTable writes the per-category metric table with totals.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, ins *model.Insights) {
	rows := make([][]string, 0, len(ins.Rows)+1)
	for _, r := range ins.Rows {
		rows = append(rows, []string{
			r.Category,
			formatNumber(r.Metric1),
			formatNumber(r.Metric2),
			formatDelta(r.Delta),
			formatPercent(r.Share1),
			formatPercent(r.Share2),
		})
	}
	rows = append(rows, []string{
		"**Total**",
		"**" + formatNumber(ins.Total1) + "**",
		"**" + formatNumber(ins.Total2) + "**",
		"-", "-", "-",
	})

	md.Table(markdown.TableSet{
		Header: []string{
			"Category", ins.Title1, ins.Title2, "Delta",
			ins.Title1 + " share", ins.Title2 + " share",
		},
		Rows: rows,
	})
	md.PlainText("")
}

// writeShareChart writes a mermaid pie chart of the first metric's share
// per category. Zero-valued categories are omitted; mermaid renders them
// as empty slivers otherwise.
func (w *MarkdownWriter) writeShareChart(md *markdown.Markdown, ins *model.Insights) {
	if ins.Total1 <= 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(ins.Title1+" by category"),
		piechart.WithShowData(true),
	)
	for _, r := range ins.Rows {
		if r.Metric1 > 0 {
			chart.LabelAndIntValue(r.Category, uint64(math.Round(r.Metric1)))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeTopMover notes the category with the largest absolute delta.
func (w *MarkdownWriter) writeTopMover(md *markdown.Markdown, ins *model.Insights) {
	top, ok := ins.TopMover()
	if !ok || top.Delta == 0 {
		md.Note("No movement between the two metrics.")
		md.PlainText("")
		return
	}

	direction := "up"
	if top.Delta < 0 {
		direction = "down"
	}
	md.Note(fmt.Sprintf("Largest mover: **%s**, %s %s from %s to %s.",
		top.Category, direction,
		formatNumber(math.Abs(top.Delta)),
		formatNumber(top.Metric1), formatNumber(top.Metric2),
	))
	md.PlainText("")
}

// formatNumber renders a metric with the shortest exact decimal form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDelta renders a signed delta, keeping the plus sign for gains.
func formatDelta(v float64) string {
	if v > 0 {
		return "+" + formatNumber(v)
	}
	return formatNumber(v)
}

// formatPercent renders a [0, 1] share as a percentage with one decimal.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
