package services

// SampleDSRRows returns the fixed fallback dataset shown when report
// fetches keep failing. Callers must label it as sample data alongside the
// underlying error; it is never presented as live data.
func SampleDSRRows() []ReportRow {
	raws := []RawReportRecord{
		{
			ID: "sample-1",
			Data: map[string]any{
				"shipment_number": "SHP-SAMPLE-001",
				"type":            string(TypeSeaFreight),
				"trade_direction": string(DirectionExport),
				"client":          "AMAZON PVT LMD",
				"shipper":         "Acme Exports",
				"consignee":       "Blue Harbor Imports",
				"port_of_loading": "INNSA",
				"port_of_discharge": "DEHAM",
				"carrier_name":    "MSC",
				"bl_number":       "MSCUXX123456",
				"gross_weight":    12400.0,
				"etd":             "2026-08-02",
				"eta":             "2026-08-24",
				"freight_amount":  185000.0,
				"status":          "IN PROGRESS",
			},
		},
		{
			ID: "sample-2",
			Data: map[string]any{
				"shipment_number":     "SHP-SAMPLE-002",
				"type":                string(TypeAirFreight),
				"trade_direction":     string(DirectionImport),
				"client":              "Globex Traders",
				"shipper":             "Shenzhen Components",
				"consignee":           "Globex Traders",
				"departure_airport":   "HKG",
				"destination_airport": "BOM",
				"airline_name":        "Cathay Cargo",
				"awb_number":          "160-55512346",
				"gross_weight":        860.0,
				"etd":                 "2026-08-18",
				"eta":                 "2026-08-19",
				"freight_amount":      64500.0,
				"status":              "OPEN",
			},
		},
		{
			ID: "sample-3",
			Data: map[string]any{
				"shipment_number": "SHP-SAMPLE-003",
				"type":            string(TypeSeaFreight),
				"trade_direction": string(DirectionImport),
				"client":          "Initech Machinery",
				"shipper":         "Hamburg Werke",
				"consignee":       "Initech Machinery",
				"port_of_loading": "DEHAM",
				"port_of_discharge": "INMUN",
				"carrier_name":    "Hapag-Lloyd",
				"bl_number":       "HLCUHH987654",
				"gross_weight":    22100.0,
				"etd":             "2026-07-28",
				"eta":             "2026-08-21",
				"freight_amount":  240000.0,
				"status":          "IN PROGRESS",
			},
		},
	}
	return BuildReportRows(DSRColumns, raws)
}
