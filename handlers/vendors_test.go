package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"freightdesk/testhelpers"
)

func TestHandleVendorCreatePage(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/vendors/create", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleVendorCreatePage()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"VENDOR NAME", "BASIC INFORMATION", "ADDRESS", "TAX", "BANK DETAILS")
}

func TestHandleVendorCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Oceanic Container Lines")
	form.Set("city", "Chennai")
	form.Set("gstin", "33AADCB2230M1ZV")
	form.Set("contact_name", "R. Iyer")
	form.Set("phone", "9876543210")
	form.Set("bank_name", "HDFC Bank")
	form.Set("declaration", "true")

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormPost("/vendors", form), rec)

	if err := HandleVendorCreate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, err := app.FindRecordsByFilter("vendors", "name = {:name}", "", 1, 0,
		map[string]any{"name": "Oceanic Container Lines"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected vendor to be created")
	}
	if !records[0].GetBool("declaration") {
		t.Error("expected declaration flag stored")
	}

	// Creation lands on the edit form so document slots become available.
	redirect := rec.Header().Get("HX-Redirect")
	if !strings.HasPrefix(redirect, "/vendors/") || !strings.HasSuffix(redirect, "/edit") {
		t.Errorf("expected redirect to the vendor edit page, got %q", redirect)
	}
}

func TestHandleVendorCreate_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "   ")
	form.Set("city", "Mumbai")

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormPost("/vendors", form), rec)

	if err := HandleVendorCreate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Vendor name is required")
	// Entered values survive the re-render.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Mumbai")

	records, _ := app.FindRecordsByFilter("vendors", "", "", 0, 0, nil)
	if len(records) != 0 {
		t.Error("expected nothing persisted on a validation failure")
	}
}

func TestHandleVendorEditPage_ShowsDocumentSlots(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "SkyBridge Air Cargo")

	req := httptest.NewRequest(http.MethodGet, "/vendors/"+vendor.Id+"/edit", nil)
	req.SetPathValue("id", vendor.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleVendorEditPage(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"SkyBridge Air Cargo", "DOCUMENTS",
		"GST Certificate", "PAN Card", "Cancelled Cheque", "MSME Certificate", "Declaration Form")
}

func TestHandleVendorSave_Updates(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Old Name")

	form := url.Values{}
	form.Set("name", "New Name")
	form.Set("city", "Pune")

	req := newFormPost("/vendors/"+vendor.Id+"/save", form)
	req.SetPathValue("id", vendor.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleVendorSave(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("vendors", vendor.Id)
	if err != nil {
		t.Fatalf("vendor disappeared: %v", err)
	}
	if updated.GetString("name") != "New Name" || updated.GetString("city") != "Pune" {
		t.Errorf("expected update applied, got %q/%q", updated.GetString("name"), updated.GetString("city"))
	}
}

func TestHandleVendorDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "To Be Deleted")

	req := httptest.NewRequest(http.MethodDelete, "/vendors/"+vendor.Id, nil)
	req.SetPathValue("id", vendor.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleVendorDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/vendors")

	// Vendors delete outright, unlike jobs and shipments.
	if _, err := app.FindRecordById("vendors", vendor.Id); err == nil {
		t.Error("expected the vendor row gone")
	}
}

func TestHandleVendorList_Search(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestVendor(t, app, "Oceanic Container Lines")
	testhelpers.CreateTestVendor(t, app, "SkyBridge Air Cargo")

	req := httptest.NewRequest(http.MethodGet, "/vendors?q=oceanic", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleVendorList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Oceanic Container Lines", "1 vendors")
	if strings.Contains(body, "SkyBridge Air Cargo") {
		t.Error("expected non-matching vendor filtered out")
	}
}

func TestHandleVendorDocumentUpload_UnknownSlot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Slot Test Vendor")

	req := newFormPost("/vendors/"+vendor.Id+"/documents/passport", url.Values{})
	req.SetPathValue("id", vendor.Id)
	req.SetPathValue("slot", "passport")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleVendorDocumentUpload(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for an unknown slot, got %d", rec.Code)
	}
}
