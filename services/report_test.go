package services

import "testing"

func sampleRaws() []RawReportRecord {
	return []RawReportRecord{
		{ID: "r1", Data: map[string]any{
			"shipment_number": "FD-SHP-25-26-001",
			"type":            "SEA FREIGHT",
			"trade_direction": "EXPORT",
			"client":          "AMAZON PVT LMD",
			"port_of_loading": "Nhava Sheva",
			"bl_number":       "MAEU123456",
			"gross_weight":    1250.5,
			"eta":             "2026-02-10T00:00:00Z",
			"status":          "OPEN",
		}},
		{ID: "r2", Data: map[string]any{
			"shipment_number":   "FD-SHP-25-26-002",
			"type":              "AIR FREIGHT",
			"tradeDirection":    "IMPORT",
			"client":            "Flipkart Internet",
			"departure_airport": "BOM",
			"awb_number":        "098-12345675",
			"gross_weight":      nil,
			"status":            "IN PROGRESS",
		}},
		{ID: "r3", Data: map[string]any{
			"shipment_number": "FD-SHP-25-26-003",
			"type":            "SEA FREIGHT",
			"trade_direction": "EXPORT",
			"client":          "Tata Steel",
			"port_of_loading": "",
			"from_location":   "Jamshedpur",
			"gross_weight":    800.0,
			"eta":             "2026-01-05T00:00:00Z",
			"status":          "CLOSED",
		}},
	}
}

func TestBuildReportRows_FallbackChains(t *testing.T) {
	rows := BuildReportRows(DSRColumns, sampleRaws())
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Canonical column wins when present.
	if rows[0].Cells["origin"] != "Nhava Sheva" {
		t.Errorf("expected port_of_loading as origin, got %v", rows[0].Cells["origin"])
	}
	// Second source in the chain fills in when the first is absent.
	if rows[1].Cells["origin"] != "BOM" {
		t.Errorf("expected departure_airport as origin fallback, got %v", rows[1].Cells["origin"])
	}
	// Blank strings count as missing, not as values.
	if rows[2].Cells["origin"] != "Jamshedpur" {
		t.Errorf("expected blank port skipped in favor of from_location, got %v", rows[2].Cells["origin"])
	}

	// The direction chain bridges the legacy camelCase spelling.
	if rows[1].Cells["direction"] != "IMPORT" {
		t.Errorf("expected legacy direction spelling read, got %v", rows[1].Cells["direction"])
	}

	// BL and AWB share one document column.
	if rows[0].Cells["document"] != "MAEU123456" {
		t.Errorf("expected BL number, got %v", rows[0].Cells["document"])
	}
	if rows[1].Cells["document"] != "098-12345675" {
		t.Errorf("expected AWB number, got %v", rows[1].Cells["document"])
	}

	// Exhausted chains produce nulls, and dates truncate for display.
	if rows[1].Cells["grossWeight"] != nil {
		t.Errorf("expected null gross weight, got %v", rows[1].Cells["grossWeight"])
	}
	if rows[0].Cells["eta"] != "2026-02-10" {
		t.Errorf("expected truncated ETA, got %v", rows[0].Cells["eta"])
	}
}

func TestFilterRows_CaseInsensitiveAnyColumn(t *testing.T) {
	rows := BuildReportRows(DSRColumns, sampleRaws())

	got := FilterRows(rows, "amazon")
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected the AMAZON row only, got %v", got)
	}

	got = FilterRows(rows, "SEA")
	if len(got) != 2 {
		t.Errorf("expected 2 sea freight rows, got %d", len(got))
	}

	got = FilterRows(rows, "  ")
	if len(got) != 3 {
		t.Errorf("expected blank query to keep everything, got %d", len(got))
	}

	got = FilterRows(rows, "no-such-value")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestSortRows_NumericWithNulls(t *testing.T) {
	rows := BuildReportRows(DSRColumns, sampleRaws())

	SortRows(DSRColumns, rows, "grossWeight", true)
	// Nulls first ascending, then 800 before 1250.5.
	if rows[0].ID != "r2" || rows[1].ID != "r3" || rows[2].ID != "r1" {
		t.Errorf("unexpected ascending order: %s, %s, %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}

	SortRows(DSRColumns, rows, "grossWeight", false)
	// Nulls last descending.
	if rows[0].ID != "r1" || rows[1].ID != "r3" || rows[2].ID != "r2" {
		t.Errorf("unexpected descending order: %s, %s, %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestSortRows_DatesCompareAsDates(t *testing.T) {
	rows := BuildReportRows(DSRColumns, sampleRaws())

	SortRows(DSRColumns, rows, "eta", true)
	// r2 has no ETA and sorts first; then January before February.
	if rows[0].ID != "r2" || rows[1].ID != "r3" || rows[2].ID != "r1" {
		t.Errorf("unexpected date order: %s, %s, %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestSortRows_TextIsCaseInsensitive(t *testing.T) {
	rows := BuildReportRows(DSRColumns, []RawReportRecord{
		{ID: "a", Data: map[string]any{"client": "zeta Corp"}},
		{ID: "b", Data: map[string]any{"client": "Alpha Traders"}},
		{ID: "c", Data: map[string]any{"client": "BETA Freight"}},
	})

	SortRows(DSRColumns, rows, "client", true)
	if rows[0].ID != "b" || rows[1].ID != "c" || rows[2].ID != "a" {
		t.Errorf("unexpected text order: %s, %s, %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestToggleRow(t *testing.T) {
	sel := map[string]bool{"r1": true}

	sel2 := ToggleRow(sel, "r2")
	if !sel2["r1"] || !sel2["r2"] {
		t.Errorf("expected both rows selected, got %v", sel2)
	}
	if sel["r2"] {
		t.Error("expected the original selection untouched")
	}

	sel3 := ToggleRow(sel2, "r1")
	if sel3["r1"] || !sel3["r2"] {
		t.Errorf("expected r1 deselected, got %v", sel3)
	}
}

func TestToggleAll(t *testing.T) {
	rows := BuildReportRows(DSRColumns, sampleRaws())

	// Nothing selected: select every filtered row.
	sel := ToggleAll(map[string]bool{}, rows)
	if len(sel) != 3 {
		t.Fatalf("expected all 3 rows selected, got %d", len(sel))
	}

	// Everything selected: collapse to empty.
	sel = ToggleAll(sel, rows)
	if len(sel) != 0 {
		t.Errorf("expected selection collapsed, got %d", len(sel))
	}

	// Partially selected: complete the selection rather than clearing it.
	sel = ToggleAll(map[string]bool{"r1": true}, rows)
	if len(sel) != 3 {
		t.Errorf("expected partial selection completed, got %d", len(sel))
	}

	// No rows: stays empty rather than flipping.
	sel = ToggleAll(map[string]bool{}, nil)
	if len(sel) != 0 {
		t.Errorf("expected empty selection over no rows, got %d", len(sel))
	}
}

func TestSelectedRows_PreservesOrder(t *testing.T) {
	rows := BuildReportRows(DSRColumns, sampleRaws())
	SortRows(DSRColumns, rows, "grossWeight", false)

	got := SelectedRows(rows, map[string]bool{"r2": true, "r1": true})
	if len(got) != 2 {
		t.Fatalf("expected 2 selected rows, got %d", len(got))
	}
	// Current sort order wins over selection order.
	if got[0].ID != "r1" || got[1].ID != "r2" {
		t.Errorf("expected sorted order preserved, got %s, %s", got[0].ID, got[1].ID)
	}
}
