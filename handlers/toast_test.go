package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Shipment saved")

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}

	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}

	if toast["message"] != "Shipment saved" {
		t.Errorf("expected message %q, got %q", "Shipment saved", toast["message"])
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
}

func TestSetToast_MergesExistingTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", `{"refreshList":true}`)
	SetToast(e, "info", "Draft discarded")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := parsed["refreshList"]; !ok {
		t.Error("expected the pre-existing trigger preserved")
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("expected the toast merged in")
	}
}

func TestSetToast_SetsFlashCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "warning", "Draft expired")

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "fd_flash" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a flash cookie mirroring the toast")
	}
}

func TestErrorToast(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec

	if err := ErrorToast(e, http.StatusBadRequest, "No rows selected"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap none so the body never replaces content")
	}
	if rec.Header().Get("HX-Trigger") == "" {
		t.Error("expected an error toast trigger")
	}
}
