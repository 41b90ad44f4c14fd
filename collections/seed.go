package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type vendorDef struct {
	name        string
	contactName string
	phone       string
	email       string
	city        string
	gstin       string
	declaration bool
}

var seedVendors = []vendorDef{
	{
		name:        "Oceanic Container Lines",
		contactName: "R. Menon",
		phone:       "9820011223",
		email:       "bookings@oceanic.example",
		city:        "Mumbai",
		gstin:       "27AADCO1234M1ZV",
		declaration: true,
	},
	{
		name:        "SkyBridge Air Cargo",
		contactName: "A. Fernandes",
		phone:       "9820044556",
		email:       "ops@skybridge.example",
		city:        "Mumbai",
		gstin:       "27AABCS9876K1ZQ",
		declaration: false,
	},
}

// Seed inserts the default operator account and a couple of starter
// vendors when the respective tables are empty. Safe to run on every
// startup.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedOperator(app); err != nil {
		return fmt.Errorf("seed operator: %w", err)
	}
	if err := seedVendorRecords(app); err != nil {
		return fmt.Errorf("seed vendors: %w", err)
	}
	return nil
}

func seedOperator(app *pocketbase.PocketBase) error {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return err
	}

	existing, err := app.FindAuthRecordByEmail(users, "operator@freightdesk.example")
	if err == nil && existing != nil {
		return nil
	}

	record := core.NewRecord(users)
	record.Set("email", "operator@freightdesk.example")
	record.Set("password", "changeme-please")
	record.Set("verified", true)
	return app.Save(record)
}

func seedVendorRecords(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return err
	}

	existing, err := app.FindRecordsByFilter(col, "1=1", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for _, def := range seedVendors {
		record := core.NewRecord(col)
		record.Set("name", def.name)
		record.Set("contact_name", def.contactName)
		record.Set("phone", def.phone)
		record.Set("email", def.email)
		record.Set("city", def.city)
		record.Set("gstin", def.gstin)
		record.Set("declaration", def.declaration)
		if err := app.Save(record); err != nil {
			return err
		}
	}
	return nil
}
