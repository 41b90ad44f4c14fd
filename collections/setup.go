package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the jobs, shipments, vendors and
// vendor_documents collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "jobs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "job_number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    []string{"AIR FREIGHT", "SEA FREIGHT", "TRANSPORT", "OTHERS"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "trade_direction",
			Required:  true,
			Values:    []string{"EXPORT", "IMPORT"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"OPEN", "IN PROGRESS", "CLOSED", "CANCELLED"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "retired"})

		c.Fields.Add(&core.TextField{Name: "client"})
		c.Fields.Add(&core.TextField{Name: "exporter"})
		c.Fields.Add(&core.TextField{Name: "importer"})
		c.Fields.Add(&core.TextField{Name: "shipper"})
		c.Fields.Add(&core.TextField{Name: "consignee"})

		c.Fields.Add(&core.TextField{Name: "port_of_loading"})
		c.Fields.Add(&core.TextField{Name: "port_of_discharge"})
		c.Fields.Add(&core.TextField{Name: "departure_airport"})
		c.Fields.Add(&core.TextField{Name: "destination_airport"})
		c.Fields.Add(&core.TextField{Name: "from_location"})
		c.Fields.Add(&core.TextField{Name: "to_location"})

		c.Fields.Add(&core.TextField{Name: "vessel_name"})
		c.Fields.Add(&core.TextField{Name: "voyage_number"})
		c.Fields.Add(&core.TextField{Name: "bl_number"})
		c.Fields.Add(&core.DateField{Name: "bl_date"})
		c.Fields.Add(&core.TextField{Name: "container_number"})
		c.Fields.Add(&core.TextField{Name: "container_type"})

		c.Fields.Add(&core.TextField{Name: "airline_name"})
		c.Fields.Add(&core.TextField{Name: "flight_number"})
		c.Fields.Add(&core.TextField{Name: "awb_number"})
		c.Fields.Add(&core.DateField{Name: "awb_date"})

		c.Fields.Add(&core.TextField{Name: "vehicle_number"})
		c.Fields.Add(&core.TextField{Name: "driver_name"})
		c.Fields.Add(&core.TextField{Name: "driver_phone"})
		c.Fields.Add(&core.TextField{Name: "lr_number"})
		c.Fields.Add(&core.TextField{Name: "cargo_description"})
		c.Fields.Add(&core.TextField{Name: "service_description"})
		c.Fields.Add(&core.DateField{Name: "trip_date"})

		c.Fields.Add(&core.TextField{Name: "commodity"})
		c.Fields.Add(&core.NumberField{Name: "gross_weight"})
		c.Fields.Add(&core.NumberField{Name: "net_weight"})
		c.Fields.Add(&core.NumberField{Name: "chargeable_weight"})
		c.Fields.Add(&core.NumberField{Name: "freight_amount"})
		c.Fields.Add(&core.DateField{Name: "etd"})
		c.Fields.Add(&core.DateField{Name: "eta"})
		c.Fields.Add(&core.TextField{Name: "linked_shipment"})
		c.Fields.Add(&core.TextField{Name: "remarks"})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "shipments", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "shipment_number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    []string{"SEA FREIGHT", "AIR FREIGHT"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "trade_direction",
			Required:  true,
			Values:    []string{"EXPORT", "IMPORT"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"OPEN", "IN PROGRESS", "CLOSED", "CANCELLED"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "retired"})

		c.Fields.Add(&core.TextField{Name: "client"})
		c.Fields.Add(&core.TextField{Name: "exporter"})
		c.Fields.Add(&core.TextField{Name: "importer"})
		c.Fields.Add(&core.TextField{Name: "shipper"})
		c.Fields.Add(&core.TextField{Name: "consignee"})
		c.Fields.Add(&core.TextField{Name: "notify_party"})
		c.Fields.Add(&core.TextField{Name: "carrier_name"})

		c.Fields.Add(&core.TextField{Name: "port_of_loading"})
		c.Fields.Add(&core.TextField{Name: "port_of_discharge"})
		c.Fields.Add(&core.TextField{Name: "departure_airport"})
		c.Fields.Add(&core.TextField{Name: "destination_airport"})

		c.Fields.Add(&core.TextField{Name: "vessel_name"})
		c.Fields.Add(&core.TextField{Name: "voyage_number"})
		c.Fields.Add(&core.TextField{Name: "bl_number"})
		c.Fields.Add(&core.DateField{Name: "bl_date"})
		c.Fields.Add(&core.TextField{Name: "container_number"})
		c.Fields.Add(&core.TextField{Name: "container_type"})
		c.Fields.Add(&core.TextField{Name: "seal_number"})

		c.Fields.Add(&core.TextField{Name: "airline_name"})
		c.Fields.Add(&core.TextField{Name: "flight_number"})
		c.Fields.Add(&core.TextField{Name: "awb_number"})
		c.Fields.Add(&core.DateField{Name: "awb_date"})

		c.Fields.Add(&core.NumberField{Name: "packages"})
		c.Fields.Add(&core.TextField{Name: "package_type"})
		c.Fields.Add(&core.TextField{Name: "commodity"})
		c.Fields.Add(&core.NumberField{Name: "gross_weight"})
		c.Fields.Add(&core.NumberField{Name: "net_weight"})
		c.Fields.Add(&core.NumberField{Name: "chargeable_weight"})
		c.Fields.Add(&core.NumberField{Name: "cbm"})
		c.Fields.Add(&core.NumberField{Name: "freight_amount"})
		c.Fields.Add(&core.NumberField{Name: "origin_charges"})
		c.Fields.Add(&core.NumberField{Name: "destination_charges"})
		c.Fields.Add(&core.DateField{Name: "etd"})
		c.Fields.Add(&core.DateField{Name: "eta"})
		c.Fields.Add(&core.TextField{Name: "remarks"})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	vendors := ensureCollection(app, "vendors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_name"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "city"})
		c.Fields.Add(&core.TextField{Name: "state"})
		c.Fields.Add(&core.TextField{Name: "country"})
		c.Fields.Add(&core.TextField{Name: "gstin"})
		c.Fields.Add(&core.TextField{Name: "pan"})
		c.Fields.Add(&core.TextField{Name: "bank_name"})
		c.Fields.Add(&core.TextField{Name: "bank_account_no"})
		c.Fields.Add(&core.TextField{Name: "bank_ifsc"})
		c.Fields.Add(&core.TextField{Name: "bank_branch"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.BoolField{Name: "declaration"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	// One row per occupied document slot; deleting the row removes the
	// backing stored file as well.
	ensureCollection(app, "vendor_documents", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "vendor",
			Required:      true,
			CollectionId:  vendors.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "slot", Required: true})
		c.Fields.Add(&core.TextField{Name: "name"})
		c.Fields.Add(&core.FileField{
			Name:      "document",
			Required:  true,
			MaxSelect: 1,
			MaxSize:   10 << 20,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback populates its fields, and
// the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
