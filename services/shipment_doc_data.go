package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// ShipmentDocData holds every field the fixed shipment document layout
// references. Builders substitute Placeholder for anything missing so the
// renderer never receives a blank field.
type ShipmentDocData struct {
	// Company identity for the letterhead.
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string

	// Header
	ShipmentNumber string
	Type           string
	Direction      string
	Status         string

	// Parties
	Client      string
	Shipper     string
	Consignee   string
	NotifyParty string
	Exporter    string
	Importer    string

	// Carrier / routing
	Carrier         string
	VesselName      string
	VoyageNumber    string
	FlightNumber    string
	Origin          string
	Destination     string
	DocumentLabel   string // "B/L No" for sea, "AWB No" for air
	DocumentNumber  string
	DocumentDate    string
	ContainerNumber string
	ContainerType   string
	SealNumber      string
	ETD             string
	ETA             string

	// Goods
	Commodity        string
	Packages         string
	PackageType      string
	GrossWeight      string
	NetWeight        string
	ChargeableWeight string
	CBM              string

	// Charges
	FreightAmount      string
	OriginCharges      string
	DestinationCharges string
	TotalCharges       string

	Remarks string
}

// BuildShipmentDocData loads a shipment record and flattens it into the
// document data object, applying placeholders per field.
func BuildShipmentDocData(app *pocketbase.PocketBase, companyName, companyAddress, companyEmail, shipmentID string) (*ShipmentDocData, error) {
	rec, err := app.FindRecordById(ShipmentEntity.Collection, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("shipment not found: %w", err)
	}

	draft := FromStorageRow(ShipmentEntity, RowFromRecord(ShipmentEntity, rec))
	typ := RecordType(rec.GetString(ColumnType))

	data := &ShipmentDocData{
		CompanyName:    companyName,
		CompanyAddress: companyAddress,
		CompanyEmail:   companyEmail,

		ShipmentNumber: OrPlaceholder(rec.GetString(ShipmentEntity.NumberField)),
		Type:           OrPlaceholder(string(typ)),
		Direction:      OrPlaceholder(rec.GetString(ColumnDirection)),
		Status:         OrPlaceholder(rec.GetString(ColumnStatus)),

		Client:      OrPlaceholder(draft["client"]),
		Shipper:     OrPlaceholder(draft["shipper"]),
		Consignee:   OrPlaceholder(draft["consignee"]),
		NotifyParty: OrPlaceholder(draft["notifyParty"]),
		Exporter:    OrPlaceholder(draft["exporter"]),
		Importer:    OrPlaceholder(draft["importer"]),

		VesselName:      OrPlaceholder(draft["vesselName"]),
		VoyageNumber:    OrPlaceholder(draft["voyageNumber"]),
		FlightNumber:    OrPlaceholder(draft["flightNumber"]),
		ContainerNumber: OrPlaceholder(draft["containerNumber"]),
		ContainerType:   OrPlaceholder(draft["containerType"]),
		SealNumber:      OrPlaceholder(draft["sealNumber"]),
		ETD:             OrPlaceholder(draft["etd"]),
		ETA:             OrPlaceholder(draft["eta"]),

		Commodity:        OrPlaceholder(draft["commodity"]),
		Packages:         OrPlaceholder(draft["packages"]),
		PackageType:      OrPlaceholder(draft["packageType"]),
		NetWeight:        OrPlaceholder(draft["netWeight"]),
		ChargeableWeight: OrPlaceholder(draft["chargeableWeight"]),
		CBM:              OrPlaceholder(draft["cbm"]),

		Remarks: OrPlaceholder(draft["remarks"]),
	}

	if gw := rec.GetFloat("gross_weight"); gw > 0 {
		data.GrossWeight = FormatWeight(gw)
	} else {
		data.GrossWeight = Placeholder
	}

	// Air shipments route via airports and an AWB; sea via ports and a B/L.
	if typ == TypeAirFreight {
		data.Carrier = OrPlaceholder(draft["airlineName"])
		data.Origin = OrPlaceholder(draft["departureAirport"])
		data.Destination = OrPlaceholder(draft["destinationAirport"])
		data.DocumentLabel = "AWB No"
		data.DocumentNumber = OrPlaceholder(draft["awbNumber"])
		data.DocumentDate = OrPlaceholder(draft["awbDate"])
	} else {
		data.Carrier = OrPlaceholder(draft["carrierName"])
		data.Origin = OrPlaceholder(draft["portOfLoading"])
		data.Destination = OrPlaceholder(draft["portOfDischarge"])
		data.DocumentLabel = "B/L No"
		data.DocumentNumber = OrPlaceholder(draft["blNumber"])
		data.DocumentDate = OrPlaceholder(draft["blDate"])
	}

	freight := rec.GetFloat("freight_amount")
	origin := rec.GetFloat("origin_charges")
	destination := rec.GetFloat("destination_charges")
	data.FreightAmount = FormatINR(freight)
	data.OriginCharges = FormatINR(origin)
	data.DestinationCharges = FormatINR(destination)
	data.TotalCharges = FormatINR(freight + origin + destination)

	return data, nil
}
