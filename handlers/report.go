package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
	"freightdesk/templates"
)

const reportTitle = "Daily Status Report"

// ReportGate counts consecutive report fetch failures. Once the count
// reaches the threshold the report switches to the fixed sample dataset
// until a fetch succeeds or the user retries explicitly.
type ReportGate struct {
	mu        sync.Mutex
	failures  int
	threshold int
	lastError string
}

func NewReportGate(threshold int) *ReportGate {
	if threshold < 1 {
		threshold = 1
	}
	return &ReportGate{threshold: threshold}
}

// RecordFailure notes one more failed fetch and reports whether the sample
// fallback is now active.
func (g *ReportGate) RecordFailure(err error) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures++
	g.lastError = err.Error()
	return g.failures >= g.threshold
}

// Reset clears the failure streak after a successful fetch or an explicit
// retry.
func (g *ReportGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures = 0
	g.lastError = ""
}

// Tripped reports whether the fallback is active, with the error that
// tripped it.
func (g *ReportGate) Tripped() (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.failures >= g.threshold, g.lastError
}

// reportState is the view state carried through every report request.
type reportState struct {
	Query    string
	SortKey  string
	SortAsc  bool
	Selected map[string]bool
}

func parseReportState(r *http.Request) (reportState, error) {
	if err := r.ParseForm(); err != nil {
		return reportState{}, err
	}
	state := reportState{
		Query:    r.Form.Get("q"),
		SortKey:  r.Form.Get("sort"),
		SortAsc:  r.Form.Get("dir") != "desc",
		Selected: map[string]bool{},
	}
	for _, id := range r.Form["sel"] {
		state.Selected[id] = true
	}

	// A header click toggles that column: same column flips the direction,
	// a new column sorts ascending.
	if toggle := r.Form.Get("toggle"); toggle != "" {
		if toggle == state.SortKey {
			state.SortAsc = !state.SortAsc
		} else {
			state.SortKey = toggle
			state.SortAsc = true
		}
	}
	return state, nil
}

// loadReportRows fetches and flattens the live shipment rows, falling back
// to the sample dataset once the gate trips.
func loadReportRows(app *pocketbase.PocketBase, gate *ReportGate) (rows []services.ReportRow, sampleMode bool, sampleErr, errMsg string) {
	records, err := services.ListForReport(app, services.ShipmentEntity)
	if err != nil {
		log.Printf("report: could not fetch shipments: %v", err)
		if gate.RecordFailure(err) {
			_, lastErr := gate.Tripped()
			return services.SampleDSRRows(), true, lastErr, ""
		}
		return nil, false, "", err.Error()
	}
	gate.Reset()

	raws := make([]services.RawReportRecord, 0, len(records))
	for _, rec := range records {
		raws = append(raws, services.RawReportRecord{
			ID:   rec.Id,
			Data: services.RowFromRecord(services.ShipmentEntity, rec),
		})
	}
	return services.BuildReportRows(services.DSRColumns, raws), false, "", ""
}

// viewRows applies the state's filter and sort to the loaded rows and
// prunes the selection to rows still visible.
func viewRows(rows []services.ReportRow, state *reportState) []services.ReportRow {
	rows = services.FilterRows(rows, state.Query)
	if state.SortKey != "" {
		services.SortRows(services.DSRColumns, rows, state.SortKey, state.SortAsc)
	}

	visible := map[string]bool{}
	for _, r := range rows {
		visible[r.ID] = true
	}
	for id := range state.Selected {
		if !visible[id] {
			delete(state.Selected, id)
		}
	}
	return rows
}

func buildReportData(rows []services.ReportRow, state reportState, sampleMode bool, sampleErr, errMsg string) templates.ReportData {
	data := templates.ReportData{
		Title:        reportTitle,
		Query:        state.Query,
		SortKey:      state.SortKey,
		SortAsc:      state.SortAsc,
		TotalCount:   len(rows),
		SampleMode:   sampleMode,
		SampleError:  sampleErr,
		ErrorMessage: errMsg,
	}
	for _, c := range services.DSRColumns {
		data.Columns = append(data.Columns, templates.ReportColumnView{Key: c.Key, Label: c.Label})
	}
	for _, r := range rows {
		view := templates.ReportRowView{ID: r.ID, Selected: state.Selected[r.ID]}
		for _, c := range services.DSRColumns {
			view.Cells = append(view.Cells, reportCellText(r.Cells[c.Key]))
		}
		data.Rows = append(data.Rows, view)
	}
	for id := range state.Selected {
		data.Selected = append(data.Selected, id)
	}
	return data
}

// reportCellText renders one cell for display, blanking nulls.
func reportCellText(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func renderReport(e *core.RequestEvent, data templates.ReportData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ReportContent(data)
	} else {
		component = templates.ReportPage(data, GetHeaderData(e.Request, "report"))
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleReportView renders the DSR table with the current filter, sort and
// selection.
func HandleReportView(app *pocketbase.PocketBase, gate *ReportGate) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state, err := parseReportState(e.Request)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		if e.Request.URL.Query().Get("retry") == "1" {
			gate.Reset()
		}

		rows, sampleMode, sampleErr, errMsg := loadReportRows(app, gate)
		rows = viewRows(rows, &state)
		return renderReport(e, buildReportData(rows, state, sampleMode, sampleErr, errMsg))
	}
}

// HandleReportSelectAll flips the select-all toggle over the filtered rows.
func HandleReportSelectAll(app *pocketbase.PocketBase, gate *ReportGate) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state, err := parseReportState(e.Request)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		rows, sampleMode, sampleErr, errMsg := loadReportRows(app, gate)
		rows = viewRows(rows, &state)
		state.Selected = services.ToggleAll(state.Selected, rows)
		return renderReport(e, buildReportData(rows, state, sampleMode, sampleErr, errMsg))
	}
}

// HandleReportExport streams the current view as a spreadsheet. The export
// preserves the on-screen order; scope=selected exports only checked rows
// and refuses to produce an empty file.
func HandleReportExport(app *pocketbase.PocketBase, gate *ReportGate) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state, err := parseReportState(e.Request)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		rows, sampleMode, sampleErr, errMsg := loadReportRows(app, gate)
		if errMsg != "" {
			return ErrorToast(e, http.StatusBadGateway, "Could not fetch report data: "+errMsg)
		}
		// Sample rows exist only so the on-screen table stays readable while
		// the store is down. They never leave the app as a download.
		if sampleMode {
			return ErrorToast(e, http.StatusServiceUnavailable, "Live data is unavailable ("+sampleErr+"); sample data cannot be exported")
		}
		rows = viewRows(rows, &state)

		if e.Request.URL.Query().Get("scope") == "selected" {
			rows = services.SelectedRows(rows, state.Selected)
			if len(rows) == 0 {
				return ErrorToast(e, http.StatusBadRequest, "No rows selected")
			}
		}
		if len(rows) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Nothing to export")
		}

		book, err := services.GenerateReportExcel(reportTitle, services.DSRColumns, rows)
		if err != nil {
			log.Printf("report: could not generate export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate export: "+err.Error())
		}

		filename := templates.ReportFileName(reportTitle)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		e.Response.Header().Set("Content-Length", fmt.Sprintf("%d", len(book)))
		_, err = e.Response.Write(book)
		return err
	}
}
