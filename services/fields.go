package services

// TradeDirection is the trade direction of a job or shipment, fixed at creation.
type TradeDirection string

const (
	DirectionExport TradeDirection = "EXPORT"
	DirectionImport TradeDirection = "IMPORT"
)

// RecordType is the closed category governing which fields apply to a record.
type RecordType string

const (
	TypeAirFreight RecordType = "AIR FREIGHT"
	TypeSeaFreight RecordType = "SEA FREIGHT"
	TypeTransport  RecordType = "TRANSPORT"
	TypeOthers     RecordType = "OTHERS"
)

// FieldKind selects the input rendered for a field and how its value is
// coerced when written to storage.
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldNumber FieldKind = "number"
	FieldDate   FieldKind = "date"
	FieldSelect FieldKind = "select"
)

// FieldDef describes one wizard form field.
type FieldDef struct {
	Label    string
	Key      string
	Kind     FieldKind
	Required bool
	// VisibleWhen restricts the field to one trade direction.
	// Empty means always visible.
	VisibleWhen TradeDirection
	// Options holds the choices for select fields.
	Options []string
}

// Visible reports whether the field applies for the given direction.
func (f FieldDef) Visible(dir TradeDirection) bool {
	return f.VisibleWhen == "" || f.VisibleWhen == dir
}

// Common party fields shared by every job catalog.
var jobPartyFields = []FieldDef{
	{Label: "Client", Key: "client", Kind: FieldText, Required: true},
	{Label: "Exporter", Key: "exporter", Kind: FieldText, Required: true, VisibleWhen: DirectionExport},
	{Label: "Importer", Key: "importer", Kind: FieldText, Required: true, VisibleWhen: DirectionImport},
}

var seaJobFields = append(append([]FieldDef{}, jobPartyFields...), []FieldDef{
	{Label: "Shipper", Key: "shipper", Kind: FieldText, Required: true},
	{Label: "Consignee", Key: "consignee", Kind: FieldText, Required: true},
	{Label: "Port of Loading", Key: "portOfLoading", Kind: FieldText, Required: true},
	{Label: "Port of Discharge", Key: "portOfDischarge", Kind: FieldText, Required: true},
	{Label: "Vessel Name", Key: "vesselName", Kind: FieldText},
	{Label: "Voyage Number", Key: "voyageNumber", Kind: FieldText},
	{Label: "B/L Number", Key: "blNumber", Kind: FieldText},
	{Label: "B/L Date", Key: "blDate", Kind: FieldDate},
	{Label: "Container Number", Key: "containerNumber", Kind: FieldText},
	{Label: "Container Type", Key: "containerType", Kind: FieldSelect, Options: ContainerTypeOptions},
	{Label: "Commodity", Key: "commodity", Kind: FieldText, Required: true},
	{Label: "Gross Weight (Kg)", Key: "grossWeight", Kind: FieldNumber, Required: true},
	{Label: "Net Weight (Kg)", Key: "netWeight", Kind: FieldNumber},
	{Label: "Freight Amount", Key: "freightAmount", Kind: FieldNumber},
	{Label: "ETD", Key: "etd", Kind: FieldDate},
	{Label: "ETA", Key: "eta", Kind: FieldDate},
	{Label: "Linked Shipment", Key: "linkedShipment", Kind: FieldSelect},
	{Label: "Remarks", Key: "remarks", Kind: FieldText},
}...)

// OTHERS shares the sea structure minus vessel, voyage, container and B/L
// specifics, plus a free-form service description.
var otherJobFields = append(append([]FieldDef{}, jobPartyFields...), []FieldDef{
	{Label: "Shipper", Key: "shipper", Kind: FieldText, Required: true},
	{Label: "Consignee", Key: "consignee", Kind: FieldText, Required: true},
	{Label: "Port of Loading", Key: "portOfLoading", Kind: FieldText, Required: true},
	{Label: "Port of Discharge", Key: "portOfDischarge", Kind: FieldText, Required: true},
	{Label: "Service Description", Key: "serviceDescription", Kind: FieldText, Required: true},
	{Label: "Commodity", Key: "commodity", Kind: FieldText, Required: true},
	{Label: "Gross Weight (Kg)", Key: "grossWeight", Kind: FieldNumber, Required: true},
	{Label: "Net Weight (Kg)", Key: "netWeight", Kind: FieldNumber},
	{Label: "Freight Amount", Key: "freightAmount", Kind: FieldNumber},
	{Label: "ETD", Key: "etd", Kind: FieldDate},
	{Label: "ETA", Key: "eta", Kind: FieldDate},
	{Label: "Linked Shipment", Key: "linkedShipment", Kind: FieldSelect},
	{Label: "Remarks", Key: "remarks", Kind: FieldText},
}...)

var airJobFields = append(append([]FieldDef{}, jobPartyFields...), []FieldDef{
	{Label: "Shipper", Key: "shipper", Kind: FieldText, Required: true},
	{Label: "Consignee", Key: "consignee", Kind: FieldText, Required: true},
	{Label: "Departure Airport", Key: "departureAirport", Kind: FieldText, Required: true},
	{Label: "Destination Airport", Key: "destinationAirport", Kind: FieldText, Required: true},
	{Label: "Airline", Key: "airlineName", Kind: FieldText},
	{Label: "Flight Number", Key: "flightNumber", Kind: FieldText},
	{Label: "AWB Number", Key: "awbNumber", Kind: FieldText, Required: true},
	{Label: "AWB Date", Key: "awbDate", Kind: FieldDate},
	{Label: "Commodity", Key: "commodity", Kind: FieldText, Required: true},
	{Label: "Gross Weight (Kg)", Key: "grossWeight", Kind: FieldNumber, Required: true},
	{Label: "Chargeable Weight (Kg)", Key: "chargeableWeight", Kind: FieldNumber},
	{Label: "Freight Amount", Key: "freightAmount", Kind: FieldNumber},
	{Label: "ETD", Key: "etd", Kind: FieldDate},
	{Label: "ETA", Key: "eta", Kind: FieldDate},
	{Label: "Linked Shipment", Key: "linkedShipment", Kind: FieldSelect},
	{Label: "Remarks", Key: "remarks", Kind: FieldText},
}...)

// TRANSPORT uses a from/to location pair and vehicle details; it never
// carries vessel, B/L or AWB fields.
var transportJobFields = []FieldDef{
	{Label: "Client", Key: "client", Kind: FieldText, Required: true},
	{Label: "From Location", Key: "fromLocation", Kind: FieldText, Required: true},
	{Label: "To Location", Key: "toLocation", Kind: FieldText, Required: true},
	{Label: "Vehicle Number", Key: "vehicleNumber", Kind: FieldText, Required: true},
	{Label: "Driver Name", Key: "driverName", Kind: FieldText},
	{Label: "Driver Phone", Key: "driverPhone", Kind: FieldText},
	{Label: "LR Number", Key: "lrNumber", Kind: FieldText},
	{Label: "Cargo Description", Key: "cargoDescription", Kind: FieldText, Required: true},
	{Label: "Trip Date", Key: "tripDate", Kind: FieldDate, Required: true},
	{Label: "Freight Amount", Key: "freightAmount", Kind: FieldNumber},
	{Label: "Remarks", Key: "remarks", Kind: FieldText},
}

var jobCatalogs = map[RecordType][]FieldDef{
	TypeSeaFreight: seaJobFields,
	TypeAirFreight: airJobFields,
	TypeTransport:  transportJobFields,
	TypeOthers:     otherJobFields,
}

var seaShipmentFields = []FieldDef{
	{Label: "Client", Key: "client", Kind: FieldText, Required: true},
	{Label: "Exporter", Key: "exporter", Kind: FieldText, Required: true, VisibleWhen: DirectionExport},
	{Label: "Importer", Key: "importer", Kind: FieldText, Required: true, VisibleWhen: DirectionImport},
	{Label: "Shipper", Key: "shipper", Kind: FieldText, Required: true},
	{Label: "Consignee", Key: "consignee", Kind: FieldText, Required: true},
	{Label: "Notify Party", Key: "notifyParty", Kind: FieldText},
	{Label: "Carrier", Key: "carrierName", Kind: FieldText, Required: true},
	{Label: "Port of Loading", Key: "portOfLoading", Kind: FieldText, Required: true},
	{Label: "Port of Discharge", Key: "portOfDischarge", Kind: FieldText, Required: true},
	{Label: "Vessel Name", Key: "vesselName", Kind: FieldText},
	{Label: "Voyage Number", Key: "voyageNumber", Kind: FieldText},
	{Label: "B/L Number", Key: "blNumber", Kind: FieldText},
	{Label: "B/L Date", Key: "blDate", Kind: FieldDate},
	{Label: "Container Number", Key: "containerNumber", Kind: FieldText},
	{Label: "Container Type", Key: "containerType", Kind: FieldSelect, Options: ContainerTypeOptions},
	{Label: "Seal Number", Key: "sealNumber", Kind: FieldText},
	{Label: "Packages", Key: "packages", Kind: FieldNumber},
	{Label: "Package Type", Key: "packageType", Kind: FieldSelect, Options: PackageTypeOptions},
	{Label: "Commodity", Key: "commodity", Kind: FieldText, Required: true},
	{Label: "Gross Weight (Kg)", Key: "grossWeight", Kind: FieldNumber, Required: true},
	{Label: "Net Weight (Kg)", Key: "netWeight", Kind: FieldNumber},
	{Label: "CBM", Key: "cbm", Kind: FieldNumber},
	{Label: "Freight Amount", Key: "freightAmount", Kind: FieldNumber},
	{Label: "Origin Charges", Key: "originCharges", Kind: FieldNumber},
	{Label: "Destination Charges", Key: "destinationCharges", Kind: FieldNumber},
	{Label: "ETD", Key: "etd", Kind: FieldDate},
	{Label: "ETA", Key: "eta", Kind: FieldDate},
	{Label: "Remarks", Key: "remarks", Kind: FieldText},
}

var airShipmentFields = []FieldDef{
	{Label: "Client", Key: "client", Kind: FieldText, Required: true},
	{Label: "Exporter", Key: "exporter", Kind: FieldText, Required: true, VisibleWhen: DirectionExport},
	{Label: "Importer", Key: "importer", Kind: FieldText, Required: true, VisibleWhen: DirectionImport},
	{Label: "Shipper", Key: "shipper", Kind: FieldText, Required: true},
	{Label: "Consignee", Key: "consignee", Kind: FieldText, Required: true},
	{Label: "Notify Party", Key: "notifyParty", Kind: FieldText},
	{Label: "Airline", Key: "airlineName", Kind: FieldText, Required: true},
	{Label: "Flight Number", Key: "flightNumber", Kind: FieldText},
	{Label: "Departure Airport", Key: "departureAirport", Kind: FieldText, Required: true},
	{Label: "Destination Airport", Key: "destinationAirport", Kind: FieldText, Required: true},
	{Label: "AWB Number", Key: "awbNumber", Kind: FieldText, Required: true},
	{Label: "AWB Date", Key: "awbDate", Kind: FieldDate},
	{Label: "Packages", Key: "packages", Kind: FieldNumber},
	{Label: "Package Type", Key: "packageType", Kind: FieldSelect, Options: PackageTypeOptions},
	{Label: "Commodity", Key: "commodity", Kind: FieldText, Required: true},
	{Label: "Gross Weight (Kg)", Key: "grossWeight", Kind: FieldNumber, Required: true},
	{Label: "Chargeable Weight (Kg)", Key: "chargeableWeight", Kind: FieldNumber},
	{Label: "Freight Amount", Key: "freightAmount", Kind: FieldNumber},
	{Label: "Origin Charges", Key: "originCharges", Kind: FieldNumber},
	{Label: "Destination Charges", Key: "destinationCharges", Kind: FieldNumber},
	{Label: "ETD", Key: "etd", Kind: FieldDate},
	{Label: "ETA", Key: "eta", Kind: FieldDate},
	{Label: "Remarks", Key: "remarks", Kind: FieldText},
}

var shipmentCatalogs = map[RecordType][]FieldDef{
	TypeSeaFreight: seaShipmentFields,
	TypeAirFreight: airShipmentFields,
}

// CatalogFor returns the ordered field list for a record type of the entity.
// Unknown types fall back to the entity's default catalog.
func (e *Entity) CatalogFor(t RecordType) []FieldDef {
	if fields, ok := e.Catalogs[t]; ok {
		return fields
	}
	return e.Catalogs[e.DefaultType]
}

// VisibleFields returns the catalog for the type filtered by direction
// visibility, in catalog order.
func (e *Entity) VisibleFields(t RecordType, dir TradeDirection) []FieldDef {
	var out []FieldDef
	for _, f := range e.CatalogFor(t) {
		if f.Visible(dir) {
			out = append(out, f)
		}
	}
	return out
}
