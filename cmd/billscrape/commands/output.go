package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"congress-scraper/internal/legislature"
	"congress-scraper/internal/scrapers/congress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	formatJson  = "json"
	formatTable = "table"
)

func validateFormat(format string) error {
	switch format {
	case formatJson, formatTable:
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected %q or %q", format, formatJson, formatTable)
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func formatDate(date *congress.Date) string {
	if date == nil {
		return "-"
	}
	return date.String()
}

func renderBillTable(w io.Writer, bills []congress.BillRecord) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Category", "Congress", "Introduced", "Last action", "Title"})
	for _, bill := range bills {
		category, ok := legislature.BillType(bill.Type)
		if !ok {
			category = bill.Type
		}
		t.AppendRow(table.Row{
			bill.ID,
			category,
			legislature.Ordinal(bill.Congress),
			formatDate(bill.IntroducedAt),
			formatDate(bill.LastAction),
			bill.Title,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(bills)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Title", WidthMax: 64},
		{Name: "Congress", Align: text.AlignRight},
	})
	t.Render()
}

func renderBills(w io.Writer, format string, bills []congress.BillRecord) error {
	if format == formatTable {
		renderBillTable(w, bills)
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(bills)
}
