package templates

import (
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ReportColumnView is one sortable column header.
type ReportColumnView struct {
	Key   string
	Label string
}

// ReportRowView is one rendered report row; Cells follow column order.
type ReportRowView struct {
	ID       string
	Selected bool
	Cells    []string
}

// ReportData feeds the DSR report view.
type ReportData struct {
	Title      string
	Columns    []ReportColumnView
	Rows       []ReportRowView
	Query      string
	SortKey    string
	SortAsc    bool
	Selected   []string
	TotalCount int

	// SampleMode marks the fixed fallback dataset substituted after
	// repeated fetch failures; SampleError carries the underlying error.
	SampleMode  bool
	SampleError string

	// ErrorMessage carries a fetch failure that has not yet tripped the
	// sample fallback.
	ErrorMessage string
}

// reportState writes the hidden inputs that carry the current view state
// (query, sort, selection) through every report form post.
func reportState(w io.Writer, data ReportData) {
	fmt.Fprintf(w, `<input type="hidden" name="q" value=%q>`, esc(data.Query))
	fmt.Fprintf(w, `<input type="hidden" name="sort" value=%q>`, esc(data.SortKey))
	dir := "desc"
	if data.SortAsc {
		dir = "asc"
	}
	fmt.Fprintf(w, `<input type="hidden" name="dir" value=%q>`, dir)
}

// ReportContent renders the report table fragment.
func ReportContent(data ReportData) templ.Component {
	return component(func(w io.Writer) error {
		io.WriteString(w, `<div id="report" class="report">`)
		ErrorBanner(w, data.ErrorMessage)

		fmt.Fprintf(w, `<div class="list-header"><h2>%s</h2><span class="count">%d rows</span></div>`,
			esc(data.Title), data.TotalCount)

		if data.SampleMode {
			fmt.Fprintf(w,
				`<div class="banner banner-warning">Showing sample data — live fetch failed: %s <button hx-get="/report/dsr?retry=1" hx-target="#report" hx-swap="outerHTML">Retry</button></div>`,
				esc(data.SampleError))
		}

		// Search form re-renders the table; selection resets with the filter.
		fmt.Fprintf(w,
			`<form class="report-search" hx-get="/report/dsr" hx-target="#report" hx-swap="outerHTML"><input type="search" name="q" value=%q placeholder="Search all columns"><button type="submit">Filter</button>`,
			esc(data.Query))
		if data.Query != "" {
			io.WriteString(w, `<a class="btn" href="/report/dsr">Clear filter</a>`)
		}
		io.WriteString(w, `</form>`)

		if len(data.Rows) == 0 {
			io.WriteString(w, `<p class="empty-state">No rows match.`)
			if data.Query != "" {
				io.WriteString(w, ` <a href="/report/dsr">Clear the filter</a> to see all shipments.`)
			}
			io.WriteString(w, `</p></div>`)
			return nil
		}

		io.WriteString(w, `<form id="report-form" hx-target="#report" hx-swap="outerHTML">`)
		reportState(w, data)

		io.WriteString(w, `<div class="table-scroll"><table><thead><tr>`)
		fmt.Fprintf(w, `<th><button type="submit" formmethod="post" hx-post="/report/dsr/select-all" hx-include="#report-form">All</button></th>`)
		for _, c := range data.Columns {
			marker := ""
			if c.Key == data.SortKey {
				if data.SortAsc {
					marker = " ▲"
				} else {
					marker = " ▼"
				}
			}
			fmt.Fprintf(w,
				`<th><button type="submit" hx-get="/report/dsr" name="toggle" value=%q hx-include="#report-form">%s%s</button></th>`,
				c.Key, esc(c.Label), marker)
		}
		io.WriteString(w, `</tr></thead><tbody>`)

		for _, r := range data.Rows {
			checked := ""
			if r.Selected {
				checked = " checked"
			}
			fmt.Fprintf(w, `<tr><td><input type="checkbox" name="sel" value=%q%s></td>`, r.ID, checked)
			for _, cell := range r.Cells {
				fmt.Fprintf(w, `<td>%s</td>`, esc(cell))
			}
			io.WriteString(w, `</tr>`)
		}
		io.WriteString(w, `</tbody></table></div>`)

		io.WriteString(w, `<div class="report-actions">`)
		io.WriteString(w, `<button hx-post="/report/dsr/export?scope=selected" hx-include="#report-form" hx-disabled-elt="this">Export Selected</button>`)
		io.WriteString(w, `<button hx-post="/report/dsr/export?scope=all" hx-include="#report-form" hx-disabled-elt="this">Export All</button>`)
		fmt.Fprintf(w, `<span class="selection-count">%d selected</span>`, len(data.Selected))
		io.WriteString(w, `</div></form></div>`)
		return nil
	})
}

// ReportPage renders the report inside the page shell.
func ReportPage(data ReportData, header HeaderData) templ.Component {
	return Shell(data.Title, header, ReportContent(data))
}

// ReportFileName builds the export download name from the report title.
func ReportFileName(title string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
	if name == "" {
		name = "report"
	}
	return name + ".xlsx"
}
