package services

// FieldMapping declares the one-to-one translation between a wizard draft key
// and its storage column. Translation is always declared here, never inferred
// from naming conventions.
type FieldMapping struct {
	UIKey  string
	Column string
	Kind   FieldKind
}

// Entity bundles everything the wizard, adapter and handlers need to know
// about one record family (jobs or shipments).
type Entity struct {
	Name         string // singular, lower case: "job"
	Collection   string // storage table name
	NumberField  string // business identifier column
	NumberPrefix string // prefix used when generating numbers
	Types        []RecordType
	DefaultType  RecordType
	Catalogs     map[RecordType][]FieldDef
	Mappings     []FieldMapping
}

// jobMappings is the full draft↔storage translation table for jobs. Keys are
// the union across all four type catalogs; keys unused by the current type
// are ignored at validation and save time.
var jobMappings = []FieldMapping{
	{UIKey: "client", Column: "client", Kind: FieldText},
	{UIKey: "exporter", Column: "exporter", Kind: FieldText},
	{UIKey: "importer", Column: "importer", Kind: FieldText},
	{UIKey: "shipper", Column: "shipper", Kind: FieldText},
	{UIKey: "consignee", Column: "consignee", Kind: FieldText},
	{UIKey: "portOfLoading", Column: "port_of_loading", Kind: FieldText},
	{UIKey: "portOfDischarge", Column: "port_of_discharge", Kind: FieldText},
	{UIKey: "departureAirport", Column: "departure_airport", Kind: FieldText},
	{UIKey: "destinationAirport", Column: "destination_airport", Kind: FieldText},
	{UIKey: "fromLocation", Column: "from_location", Kind: FieldText},
	{UIKey: "toLocation", Column: "to_location", Kind: FieldText},
	{UIKey: "vesselName", Column: "vessel_name", Kind: FieldText},
	{UIKey: "voyageNumber", Column: "voyage_number", Kind: FieldText},
	{UIKey: "blNumber", Column: "bl_number", Kind: FieldText},
	{UIKey: "blDate", Column: "bl_date", Kind: FieldDate},
	{UIKey: "containerNumber", Column: "container_number", Kind: FieldText},
	{UIKey: "containerType", Column: "container_type", Kind: FieldText},
	{UIKey: "airlineName", Column: "airline_name", Kind: FieldText},
	{UIKey: "flightNumber", Column: "flight_number", Kind: FieldText},
	{UIKey: "awbNumber", Column: "awb_number", Kind: FieldText},
	{UIKey: "awbDate", Column: "awb_date", Kind: FieldDate},
	{UIKey: "vehicleNumber", Column: "vehicle_number", Kind: FieldText},
	{UIKey: "driverName", Column: "driver_name", Kind: FieldText},
	{UIKey: "driverPhone", Column: "driver_phone", Kind: FieldText},
	{UIKey: "lrNumber", Column: "lr_number", Kind: FieldText},
	{UIKey: "cargoDescription", Column: "cargo_description", Kind: FieldText},
	{UIKey: "serviceDescription", Column: "service_description", Kind: FieldText},
	{UIKey: "tripDate", Column: "trip_date", Kind: FieldDate},
	{UIKey: "commodity", Column: "commodity", Kind: FieldText},
	{UIKey: "grossWeight", Column: "gross_weight", Kind: FieldNumber},
	{UIKey: "netWeight", Column: "net_weight", Kind: FieldNumber},
	{UIKey: "chargeableWeight", Column: "chargeable_weight", Kind: FieldNumber},
	{UIKey: "freightAmount", Column: "freight_amount", Kind: FieldNumber},
	{UIKey: "etd", Column: "etd", Kind: FieldDate},
	{UIKey: "eta", Column: "eta", Kind: FieldDate},
	{UIKey: "linkedShipment", Column: "linked_shipment", Kind: FieldText},
	{UIKey: "remarks", Column: "remarks", Kind: FieldText},
}

var shipmentMappings = []FieldMapping{
	{UIKey: "client", Column: "client", Kind: FieldText},
	{UIKey: "exporter", Column: "exporter", Kind: FieldText},
	{UIKey: "importer", Column: "importer", Kind: FieldText},
	{UIKey: "shipper", Column: "shipper", Kind: FieldText},
	{UIKey: "consignee", Column: "consignee", Kind: FieldText},
	{UIKey: "notifyParty", Column: "notify_party", Kind: FieldText},
	{UIKey: "carrierName", Column: "carrier_name", Kind: FieldText},
	{UIKey: "airlineName", Column: "airline_name", Kind: FieldText},
	{UIKey: "flightNumber", Column: "flight_number", Kind: FieldText},
	{UIKey: "portOfLoading", Column: "port_of_loading", Kind: FieldText},
	{UIKey: "portOfDischarge", Column: "port_of_discharge", Kind: FieldText},
	{UIKey: "departureAirport", Column: "departure_airport", Kind: FieldText},
	{UIKey: "destinationAirport", Column: "destination_airport", Kind: FieldText},
	{UIKey: "vesselName", Column: "vessel_name", Kind: FieldText},
	{UIKey: "voyageNumber", Column: "voyage_number", Kind: FieldText},
	{UIKey: "blNumber", Column: "bl_number", Kind: FieldText},
	{UIKey: "blDate", Column: "bl_date", Kind: FieldDate},
	{UIKey: "containerNumber", Column: "container_number", Kind: FieldText},
	{UIKey: "containerType", Column: "container_type", Kind: FieldText},
	{UIKey: "sealNumber", Column: "seal_number", Kind: FieldText},
	{UIKey: "awbNumber", Column: "awb_number", Kind: FieldText},
	{UIKey: "awbDate", Column: "awb_date", Kind: FieldDate},
	{UIKey: "packages", Column: "packages", Kind: FieldNumber},
	{UIKey: "packageType", Column: "package_type", Kind: FieldText},
	{UIKey: "commodity", Column: "commodity", Kind: FieldText},
	{UIKey: "grossWeight", Column: "gross_weight", Kind: FieldNumber},
	{UIKey: "netWeight", Column: "net_weight", Kind: FieldNumber},
	{UIKey: "chargeableWeight", Column: "chargeable_weight", Kind: FieldNumber},
	{UIKey: "cbm", Column: "cbm", Kind: FieldNumber},
	{UIKey: "freightAmount", Column: "freight_amount", Kind: FieldNumber},
	{UIKey: "originCharges", Column: "origin_charges", Kind: FieldNumber},
	{UIKey: "destinationCharges", Column: "destination_charges", Kind: FieldNumber},
	{UIKey: "etd", Column: "etd", Kind: FieldDate},
	{UIKey: "eta", Column: "eta", Kind: FieldDate},
	{UIKey: "remarks", Column: "remarks", Kind: FieldText},
}

// JobEntity configures the jobs record family.
var JobEntity = &Entity{
	Name:         "job",
	Collection:   "jobs",
	NumberField:  "job_number",
	NumberPrefix: "JOB",
	Types:        JobTypeOptions,
	DefaultType:  TypeOthers,
	Catalogs:     jobCatalogs,
	Mappings:     jobMappings,
}

// ShipmentEntity configures the shipments record family.
var ShipmentEntity = &Entity{
	Name:         "shipment",
	Collection:   "shipments",
	NumberField:  "shipment_number",
	NumberPrefix: "SHP",
	Types:        ShipmentTypeOptions,
	DefaultType:  TypeSeaFreight,
	Catalogs:     shipmentCatalogs,
	Mappings:     shipmentMappings,
}

// MappingFor returns the declared mapping for a draft key, if any.
func (e *Entity) MappingFor(uiKey string) (FieldMapping, bool) {
	for _, m := range e.Mappings {
		if m.UIKey == uiKey {
			return m, true
		}
	}
	return FieldMapping{}, false
}
