// Package report prints per-symbol summaries of a workflow run as a table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/rustyeddy/klineviz/journal"
	"github.com/rustyeddy/klineviz/workflow"
)

const dateFormat = "2006-01-02"

var header = []string{"Symbol", "Records", "First Close", "Last Close", "Min Close", "Max Close", "Movement %"}

// Summaries writes one row per series of res to w. The change workflow
// adds its range change as a last column.
func Summaries(w io.Writer, res *workflow.Result) {
	change := res.Workflow == workflow.NameChange

	table := tablewriter.NewWriter(w)
	if change {
		table.SetHeader(append(header[:len(header):len(header)], "Change %"))
	} else {
		table.SetHeader(header)
	}
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, s := range res.Summaries {
		row := []string{
			s.Symbol,
			strconv.Itoa(s.Records),
			formatDate(s.FirstClose),
			formatDate(s.LastClose),
			formatPrice(s.MinClose),
			formatPrice(s.MaxClose),
			fmt.Sprintf("%.4f", s.MovementPct),
		}
		if change {
			row = append(row, fmt.Sprintf("%.2f", s.ChangePct))
		}
		table.Append(row)
	}
	table.Render()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateFormat)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var recordHeader = []string{"Run", "Workflow", "Symbol", "Records", "Last Close", "Movement %", "Change %", "Window", "Created"}

// Records writes journaled series rows to w, one per record.
func Records(w io.Writer, recs []journal.SeriesRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(recordHeader)
	table.SetAutoFormatHeaders(false)

	for _, r := range recs {
		window, change := "-", "-"
		if r.Window > 0 {
			window = strconv.Itoa(r.Window)
		}
		if r.Workflow == workflow.NameChange {
			change = fmt.Sprintf("%.2f", r.ChangePct)
		}
		table.Append([]string{
			r.RunID,
			r.Workflow,
			r.Symbol,
			strconv.Itoa(r.Records),
			formatDate(r.LastClose),
			fmt.Sprintf("%.4f", r.MovementPct),
			change,
			window,
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	table.Render()
}
