package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// RecordListItem is one row of the jobs or shipments table.
type RecordListItem struct {
	ID        string
	Number    string
	Type      string
	Direction string
	Client    string
	Status    string
	Created   string
}

// RecordListData feeds the list/table view of one record family.
type RecordListData struct {
	EntityTitle string // "Jobs"
	BasePath    string // "/jobs"
	Items       []RecordListItem
	TotalCount  int
	// ErrorMessage carries a failed list fetch verbatim.
	ErrorMessage string
}

// RecordListContent renders the scrollable record table. Row clicks open
// the detail view; the row-scoped Edit and Delete actions stop propagation
// so a single click never triggers both an action and the drill-down.
func RecordListContent(data RecordListData) templ.Component {
	return component(func(w io.Writer) error {
		fmt.Fprintf(w, `<div id="record-list" class="record-list">`)
		ErrorBanner(w, data.ErrorMessage)
		fmt.Fprintf(w, `<div class="list-header"><h2>%s</h2><span class="count">%d records</span>`,
			esc(data.EntityTitle), data.TotalCount)
		fmt.Fprintf(w, `<a class="btn btn-primary" href="%s/new">+ New</a></div>`, data.BasePath)

		if len(data.Items) == 0 {
			io.WriteString(w, `<p class="empty-state">No records yet.</p></div>`)
			return nil
		}

		io.WriteString(w, `<div class="table-scroll"><table><thead><tr><th>Number</th><th>Type</th><th>Direction</th><th>Client</th><th>Status</th><th>Created</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr class="record-row" hx-get="%s/%s" hx-target="#content" hx-push-url="true">`,
				data.BasePath, item.ID)
			fmt.Fprintf(w, `<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><span class="status">%s</span></td><td>%s</td>`,
				esc(item.Number), esc(item.Type), esc(item.Direction), esc(item.Client), esc(item.Status), esc(item.Created))
			io.WriteString(w, `<td class="row-actions" onclick="event.stopPropagation()">`)
			fmt.Fprintf(w, `<a class="btn" href="%s/%s/edit">Edit</a>`, data.BasePath, item.ID)
			fmt.Fprintf(w,
				`<button class="btn btn-danger" hx-delete="%s/%s" hx-confirm="Delete %s? It will be removed from the active list." hx-disabled-elt="this">Delete</button>`,
				data.BasePath, item.ID, esc(item.Number))
			io.WriteString(w, `</td></tr>`)
		}
		io.WriteString(w, `</tbody></table></div></div>`)
		return nil
	})
}

// RecordListPage renders the list inside the page shell.
func RecordListPage(data RecordListData, header HeaderData) templ.Component {
	return Shell(data.EntityTitle, header, RecordListContent(data))
}

// FieldGroupItem is one label/value pair of the detail view.
type FieldGroupItem struct {
	Label string
	Value string
}

// FieldGroup is one titled section of the detail view. Which groups appear
// depends on the record's type.
type FieldGroup struct {
	Title string
	Items []FieldGroupItem
}

// RecordViewData feeds the read-only record summary.
type RecordViewData struct {
	EntityTitle string
	BasePath    string
	ID          string
	Number      string
	Type        string
	Direction   string
	Status      string
	Groups      []FieldGroup
	// ExportPDF names the document download route, empty when the record
	// family has no document export.
	ExportPDF string
}

// RecordViewContent renders the type-keyed read-only summary.
func RecordViewContent(data RecordViewData) templ.Component {
	return component(func(w io.Writer) error {
		fmt.Fprintf(w, `<div id="record-view" class="record-view"><h2>%s %s</h2>`,
			esc(data.EntityTitle), esc(data.Number))
		fmt.Fprintf(w, `<p class="record-meta">%s · %s · %s</p>`,
			esc(data.Type), esc(data.Direction), esc(data.Status))

		for _, g := range data.Groups {
			fmt.Fprintf(w, `<section class="field-group"><h3>%s</h3><dl>`, esc(g.Title))
			for _, item := range g.Items {
				fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`, esc(item.Label), esc(item.Value))
			}
			io.WriteString(w, `</dl></section>`)
		}

		io.WriteString(w, `<div class="view-actions">`)
		fmt.Fprintf(w, `<a class="btn" href="%s">Back to list</a>`, data.BasePath)
		fmt.Fprintf(w, `<a class="btn" href="%s/%s/edit">Edit</a>`, data.BasePath, data.ID)
		if data.ExportPDF != "" {
			fmt.Fprintf(w, `<a class="btn" href=%q>Download PDF</a>`, data.ExportPDF)
		}
		io.WriteString(w, `</div></div>`)
		return nil
	})
}

// RecordViewPage renders the detail view inside the page shell.
func RecordViewPage(data RecordViewData, header HeaderData) templ.Component {
	return Shell(data.EntityTitle+" "+data.Number, header, RecordViewContent(data))
}
