package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"freightdesk/services"
	"freightdesk/testhelpers"
)

func postWizardStep(t *testing.T, app *pocketbase.PocketBase, store *services.SessionStore, entity *services.Entity, sessionID string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := newFormPost("/"+entity.Collection+"/wizard/"+sessionID, form)
	req.SetPathValue("sessionId", sessionID)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := HandleWizardStep(app, entity, store)(e); err != nil {
		t.Fatalf("wizard step returned error: %v", err)
	}
	return rec
}

func TestHandleWizardStart(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	handler := HandleWizardStart(app, services.ShipmentEntity, store)

	req := httptest.NewRequest(http.MethodGet, "/shipments/new", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Select Type", "SEA FREIGHT", "AIR FREIGHT", "FD-SHP-")
}

func TestWizard_CreateSeaExportShipment(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	entity := services.ShipmentEntity

	w := services.NewWizard(entity, "FD-SHP-25-26-001")
	sessionID := store.Open(w)

	// Step 1: pick the type.
	rec := postWizardStep(t, app, store, entity, sessionID, url.Values{
		"action": {"next"}, "type": {"SEA FREIGHT"},
	})
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Select Direction")

	// Step 2: pick the direction.
	rec = postWizardStep(t, app, store, entity, sessionID, url.Values{
		"action": {"next"}, "direction": {"EXPORT"},
	})
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Enter Details", "Exporter")
	if body := rec.Body.String(); strings.Contains(body, "Importer") {
		t.Error("importer field must be hidden for an export shipment")
	}

	// Step 3: fill the details.
	details := url.Values{"action": {"next"}}
	for _, f := range w.VisibleFields() {
		if f.Required {
			details.Set(f.Key, "test value")
		}
	}
	details.Set("client", "AMAZON PVT LMD")
	details.Set("grossWeight", "1250.5")
	rec = postWizardStep(t, app, store, entity, sessionID, details)
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Confirm", "AMAZON PVT LMD")

	// Step 4: confirm persists and redirects to the list.
	rec = postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"confirm"}})
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/shipments")

	saved, err := app.FindRecordsByFilter("shipments", "shipment_number = {:n}", "", 1, 0,
		map[string]any{"n": "FD-SHP-25-26-001"})
	if err != nil || len(saved) == 0 {
		t.Fatal("expected the shipment to be persisted")
	}
	s := saved[0]
	if s.GetString("type") != "SEA FREIGHT" || s.GetString("trade_direction") != "EXPORT" {
		t.Errorf("unexpected type/direction: %q/%q", s.GetString("type"), s.GetString("trade_direction"))
	}
	if s.GetString("exporter") == "" {
		t.Error("expected exporter stored for an export shipment")
	}
	if s.GetString("importer") != "" {
		t.Error("importer must stay empty for an export shipment")
	}
	if s.GetFloat("gross_weight") != 1250.5 {
		t.Errorf("expected numeric weight stored, got %v", s.Get("gross_weight"))
	}
	if s.GetString("status") != "OPEN" {
		t.Errorf("expected new record status OPEN, got %q", s.GetString("status"))
	}

	// The session is gone after a successful confirm.
	if _, ok := store.Get(sessionID); ok {
		t.Error("expected the wizard session closed after confirm")
	}
}

func TestWizard_ValidationErrorsStayOnStep(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	entity := services.JobEntity

	w := services.NewWizard(entity, "FD-JOB-25-26-001")
	sessionID := store.Open(w)

	// Next without choosing a type re-renders the same step with the error.
	rec := postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"next"}})
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Select Type", "Select a type to continue")

	if w.Step != services.StepSelectType {
		t.Errorf("expected wizard still on the type step, got %v", w.Step)
	}
}

func TestWizard_BackSkipsValidationAndKeepsDraft(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	entity := services.ShipmentEntity

	w := services.NewWizard(entity, "FD-SHP-25-26-002")
	sessionID := store.Open(w)

	postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"next"}, "type": {"AIR FREIGHT"}})
	postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"next"}, "direction": {"IMPORT"}})

	// Partially fill the details, then go back without validating.
	rec := postWizardStep(t, app, store, entity, sessionID, url.Values{
		"action": {"back"}, "client": {"Flipkart Internet"},
	})
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Select Direction")

	if w.Draft["client"] != "Flipkart Internet" {
		t.Error("expected the partial entry preserved across Back")
	}
	if len(w.Errors) != 0 {
		t.Errorf("expected no validation errors after Back, got %v", w.Errors)
	}
}

func TestWizard_CancelDiscardsDraft(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	entity := services.JobEntity

	sessionID := store.Open(services.NewWizard(entity, "FD-JOB-25-26-002"))

	rec := postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"cancel"}})
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/jobs")

	if _, ok := store.Get(sessionID); ok {
		t.Error("expected the session discarded on cancel")
	}

	records, _ := app.FindRecordsByFilter("jobs", "", "", 0, 0, nil)
	if len(records) != 0 {
		t.Error("cancel must not persist anything")
	}
}

func TestWizard_ExpiredSessionRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()

	rec := postWizardStep(t, app, store, services.JobEntity, "no-such-session", url.Values{"action": {"next"}})
	if rec.Code != http.StatusGone {
		t.Errorf("expected status 410 for an expired session, got %d", rec.Code)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/jobs")
}

func TestHandleWizardEdit_SeedsFromRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	shipment := testhelpers.CreateTestShipment(t, app, "FD-SHP-25-26-005", map[string]any{
		"client": "Tata Steel",
	})

	req := httptest.NewRequest(http.MethodGet, "/shipments/"+shipment.Id+"/edit", nil)
	req.SetPathValue("id", shipment.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleWizardEdit(app, services.ShipmentEntity, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Edit opens directly on the details step with the stored values bound.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Enter Details", "Tata Steel")
}

func TestWizard_EditConfirmUpdatesInPlace(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	entity := services.ShipmentEntity
	shipment := testhelpers.CreateTestShipment(t, app, "FD-SHP-25-26-006", nil)
	created := shipment.GetDateTime("created")

	row := services.RowFromRecord(entity, shipment)
	w := services.SeedWizardFromRecord(entity, row, shipment.Id)
	sessionID := store.Open(w)

	details := url.Values{"action": {"next"}}
	for _, f := range w.VisibleFields() {
		if f.Required && w.Draft[f.Key] == "" {
			details.Set(f.Key, "test value")
		}
	}
	details.Set("client", "Updated Client")
	postWizardStep(t, app, store, entity, sessionID, details)

	rec := postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"confirm"}})
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/shipments")

	updated, err := app.FindRecordById("shipments", shipment.Id)
	if err != nil {
		t.Fatalf("expected the record to still exist: %v", err)
	}
	if updated.GetString("client") != "Updated Client" {
		t.Errorf("expected client updated, got %q", updated.GetString("client"))
	}
	if !updated.GetDateTime("created").Time().Equal(created.Time()) {
		t.Error("expected the creation timestamp preserved across an edit")
	}

	// Exactly one record: confirm must update, not insert.
	all, _ := app.FindRecordsByFilter("shipments", "", "", 0, 0, nil)
	if len(all) != 1 {
		t.Errorf("expected 1 shipment after an edit, got %d", len(all))
	}
}

func TestWizard_EditBackFromConfirmReturnsToDetails(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	entity := services.ShipmentEntity
	shipment := testhelpers.CreateTestShipment(t, app, "FD-SHP-25-26-009", map[string]any{
		"client": "Tata Steel",
	})

	row := services.RowFromRecord(entity, shipment)
	w := services.SeedWizardFromRecord(entity, row, shipment.Id)
	sessionID := store.Open(w)

	details := url.Values{"action": {"next"}}
	for _, f := range w.VisibleFields() {
		if f.Required && w.Draft[f.Key] == "" {
			details.Set(f.Key, "test value")
		}
	}
	rec := postWizardStep(t, app, store, entity, sessionID, details)

	// A wrong value spotted in the summary must be fixable without
	// discarding the draft.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="back"`)

	rec = postWizardStep(t, app, store, entity, sessionID, url.Values{"action": {"back"}})
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Enter Details", "Tata Steel")
	if strings.Contains(body, `value="back"`) {
		t.Error("expected no back control on the details step while editing")
	}
}
