// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestShipment creates a shipment record and returns it. Extra column
// values can be layered on through the values map.
func CreateTestShipment(t *testing.T, app *pocketbase.PocketBase, number string, values map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("shipments")
	if err != nil {
		t.Fatalf("failed to find shipments collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("shipment_number", number)
	record.Set("type", "SEA FREIGHT")
	record.Set("trade_direction", "EXPORT")
	record.Set("status", "OPEN")
	record.Set("retired", false)
	record.Set("client", "Test Client")
	record.Set("shipper", "Test Shipper")
	record.Set("consignee", "Test Consignee")
	record.Set("commodity", "General Cargo")
	record.Set("gross_weight", 1000.0)
	for k, v := range values {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test shipment: %v", err)
	}

	// Re-fetch so callers see the stored values (e.g. autodate fields are
	// persisted at millisecond precision, not the in-memory nanoseconds).
	saved, err := app.FindRecordById("shipments", record.Id)
	if err != nil {
		t.Fatalf("failed to reload test shipment: %v", err)
	}
	return saved
}

// CreateTestJob creates a job record and returns it.
func CreateTestJob(t *testing.T, app *pocketbase.PocketBase, number string, values map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		t.Fatalf("failed to find jobs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job_number", number)
	record.Set("type", "SEA FREIGHT")
	record.Set("trade_direction", "EXPORT")
	record.Set("status", "OPEN")
	record.Set("retired", false)
	record.Set("client", "Test Client")
	record.Set("commodity", "General Cargo")
	record.Set("gross_weight", 500.0)
	for k, v := range values {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job: %v", err)
	}

	return record
}

// CreateTestVendor creates a vendor record with the given name and returns it.
func CreateTestVendor(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("failed to find vendors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("city", "Mumbai")
	record.Set("gstin", "27AADCB2230M1ZV")
	record.Set("contact_name", "Test Contact")
	record.Set("phone", "9876543210")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test vendor: %v", err)
	}

	return record
}

// CreateTestUser creates a users auth record and returns it.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.SetEmail(email)
	record.SetPassword(password)
	record.SetVerified(true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
