package services

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ReportColumn describes one column of the DSR (daily status report) view.
// Sources is the ordered first-non-null-wins fallback chain of storage keys
// feeding the column. Multiple legacy spellings of the same attribute are a
// real input condition, so the chain is kept per column instead of being
// collapsed to a single key.
type ReportColumn struct {
	Key     string
	Label   string
	Kind    FieldKind
	Sources []string
}

// DSRColumns is the fixed column layout of the shipment status report.
var DSRColumns = []ReportColumn{
	{Key: "shipmentNumber", Label: "Shipment No", Kind: FieldText, Sources: []string{"shipment_number", "shipmentNumber"}},
	{Key: "type", Label: "Type", Kind: FieldText, Sources: []string{"type", "job_type"}},
	// trade_direction was historically written under two spellings; the
	// chain reads the canonical one first.
	{Key: "direction", Label: "Direction", Kind: FieldText, Sources: []string{"trade_direction", "tradeDirection"}},
	{Key: "client", Label: "Client", Kind: FieldText, Sources: []string{"client", "client_name"}},
	{Key: "shipper", Label: "Shipper", Kind: FieldText, Sources: []string{"shipper"}},
	{Key: "consignee", Label: "Consignee", Kind: FieldText, Sources: []string{"consignee"}},
	{Key: "origin", Label: "Origin", Kind: FieldText, Sources: []string{"port_of_loading", "departure_airport", "from_location"}},
	{Key: "destination", Label: "Destination", Kind: FieldText, Sources: []string{"port_of_discharge", "destination_airport", "to_location"}},
	{Key: "carrier", Label: "Carrier", Kind: FieldText, Sources: []string{"carrier_name", "airline_name", "vessel_name"}},
	{Key: "document", Label: "BL / AWB No", Kind: FieldText, Sources: []string{"bl_number", "awb_number"}},
	{Key: "grossWeight", Label: "Gross Wt (Kg)", Kind: FieldNumber, Sources: []string{"gross_weight", "grWeight"}},
	{Key: "etd", Label: "ETD", Kind: FieldDate, Sources: []string{"etd"}},
	{Key: "eta", Label: "ETA", Kind: FieldDate, Sources: []string{"eta", "arrival_date"}},
	{Key: "freightAmount", Label: "Freight Amount", Kind: FieldNumber, Sources: []string{"freight_amount", "freightAmt"}},
	{Key: "status", Label: "Status", Kind: FieldText, Sources: []string{"status"}},
}

// ReportRow is a derived, read-only flattening of one stored record. It is
// produced for display and export only and never written back.
type ReportRow struct {
	ID    string
	Cells map[string]any
}

// RawReportRecord is one fetched record as a plain key-value mapping, the
// shape the store collaborator returns rows in.
type RawReportRecord struct {
	ID   string
	Data map[string]any
}

// firstNonNull walks the source chain and returns the first value that is
// present and non-empty. Storage nulls and blank strings both count as
// missing so legacy spellings further down the chain get their turn.
func firstNonNull(data map[string]any, sources []string) any {
	for _, key := range sources {
		v, ok := data[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// BuildReportRows flattens raw records into report rows. Only the columns'
// declared sources are projected; unknown store columns never leak through.
func BuildReportRows(cols []ReportColumn, raws []RawReportRecord) []ReportRow {
	rows := make([]ReportRow, 0, len(raws))
	for _, raw := range raws {
		cells := make(map[string]any, len(cols))
		for _, c := range cols {
			v := firstNonNull(raw.Data, c.Sources)
			if c.Kind == FieldDate && v != nil {
				v = truncateDate(stringCell(v))
			}
			cells[c.Key] = v
		}
		rows = append(rows, ReportRow{ID: raw.ID, Cells: cells})
	}
	return rows
}

// FilterRows keeps rows where any stringified cell contains the query,
// case-insensitively. A blank query keeps everything.
func FilterRows(rows []ReportRow, query string) []ReportRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	var out []ReportRow
	for _, r := range rows {
		for _, v := range r.Cells {
			if strings.Contains(strings.ToLower(stringCell(v)), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// columnKind looks up the declared kind for a sort key.
func columnKind(cols []ReportColumn, key string) FieldKind {
	for _, c := range cols {
		if c.Key == key {
			return c.Kind
		}
	}
	return FieldText
}

// SortRows orders rows by one column. Nulls sort first ascending and last
// descending; numeric columns compare numerically, date columns compare as
// dates, everything else compares as case-insensitive strings. The sort is
// stable so equal rows keep their fetch order.
func SortRows(cols []ReportColumn, rows []ReportRow, key string, asc bool) {
	kind := columnKind(cols, key)
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareCells(rows[i].Cells[key], rows[j].Cells[key], kind)
		if asc {
			return c < 0
		}
		return c > 0
	})
}

// compareCells compares two cell values with nulls smallest, so that a
// descending sort naturally pushes them last.
func compareCells(a, b any, kind FieldKind) int {
	aNull := isNullCell(a)
	bNull := isNullCell(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	switch kind {
	case FieldNumber:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if aok && bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	case FieldDate:
		at, aok := parseCellDate(a)
		bt, bok := parseCellDate(b)
		if aok && bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}

	return strings.Compare(
		strings.ToLower(stringCell(a)),
		strings.ToLower(stringCell(b)),
	)
}

func isNullCell(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func parseCellDate(v any) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", truncateDate(stringCell(v)))
	return t, err == nil
}

// ToggleRow returns a copy of the selection with one row id toggled.
func ToggleRow(sel map[string]bool, id string) map[string]bool {
	out := copySelection(sel)
	if out[id] {
		delete(out, id)
	} else {
		out[id] = true
	}
	return out
}

// ToggleAll implements the select-all header toggle over the currently
// filtered rows: if every filtered row is already selected the selection
// collapses to empty, otherwise every filtered row becomes selected.
func ToggleAll(sel map[string]bool, rows []ReportRow) map[string]bool {
	all := len(rows) > 0
	for _, r := range rows {
		if !sel[r.ID] {
			all = false
			break
		}
	}
	if all {
		return map[string]bool{}
	}
	out := map[string]bool{}
	for _, r := range rows {
		out[r.ID] = true
	}
	return out
}

// SelectedRows returns the subset of rows whose ids are selected,
// preserving the rows' current order.
func SelectedRows(rows []ReportRow, sel map[string]bool) []ReportRow {
	var out []ReportRow
	for _, r := range rows {
		if sel[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func copySelection(sel map[string]bool) map[string]bool {
	out := make(map[string]bool, len(sel))
	for k, v := range sel {
		if v {
			out[k] = true
		}
	}
	return out
}
