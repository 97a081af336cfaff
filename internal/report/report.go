// Package report renders pipeline results for the terminal: the metrics
// summary, the fit history and sample tables, the schema listing, and the
// observed/predicted series as CSV for external plotting.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/trendlab/internal/store"
	"github.com/roach88/trendlab/internal/trend"
)

// Shown when no fit has been recorded or the schema is empty.
const (
	NoMetrics = "No metrics data available"
	NoTables  = "No tables in the database"
)

var printer = message.NewPrinter(language.English)

// Number formats v with the given number of decimals and English digit grouping.
func Number(v float64, decimals int) string {
	return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", v)
}

// Metrics writes the metrics summary, or NoMetrics when m is nil.
func Metrics(w io.Writer, m *trend.Metrics, decimals int) error {
	if m == nil {
		_, err := fmt.Fprintln(w, NoMetrics)
		return err
	}

	_, err := fmt.Fprintf(w,
		"R² Score: %s\nMean Absolute Error (MAE): %s\nMean Squared Error (MSE): %s\n",
		Number(m.R2, decimals),
		Number(m.MAE, decimals),
		Number(m.MSE, decimals),
	)
	return err
}

// Tables writes one table name per line, or NoTables when names is empty.
func Tables(w io.Writer, names []string) error {
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, NoTables)
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

// History renders fit records as a table.
func History(w io.Writer, records []store.FitRecord, decimals int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "R²", "MAE", "MSE"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, rec := range records {
		table.Append([]string{
			strconv.FormatInt(rec.ID, 10),
			Number(rec.R2, decimals),
			Number(rec.MAE, decimals),
			Number(rec.MSE, decimals),
		})
	}

	table.Render()
}

// Samples renders stored samples as a table.
func Samples(w io.Writer, samples []store.Sample, decimals int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Value", "Note"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, smp := range samples {
		table.Append([]string{
			strconv.FormatInt(smp.ID, 10),
			Number(smp.Value, decimals),
			smp.Note,
		})
	}

	table.Render()
}
