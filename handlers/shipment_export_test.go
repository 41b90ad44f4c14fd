package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freightdesk/config"
	"freightdesk/testhelpers"
)

func TestHandleShipmentExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()
	shipment := testhelpers.CreateTestShipment(t, app, "FD-SHP-25-26-001", map[string]any{
		"carrier_name":      "Maersk Line",
		"port_of_loading":   "Nhava Sheva",
		"port_of_discharge": "Rotterdam",
		"freight_amount":    125000.0,
	})

	req := httptest.NewRequest(http.MethodGet, "/shipments/"+shipment.Id+"/pdf", nil)
	req.SetPathValue("id", shipment.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleShipmentExportPDF(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "FD-SHP-25-26-001.pdf") {
		t.Errorf("unexpected content disposition %q", cd)
	}
	if body := rec.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("expected a PDF payload")
	}
}

func TestHandleShipmentExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()

	req := httptest.NewRequest(http.MethodGet, "/shipments/missing/pdf", nil)
	req.SetPathValue("id", "missing")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleShipmentExportPDF(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
