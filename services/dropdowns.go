package services

// JobTypeOptions lists the selectable job categories in wizard order.
var JobTypeOptions = []RecordType{
	TypeAirFreight,
	TypeSeaFreight,
	TypeTransport,
	TypeOthers,
}

// ShipmentTypeOptions lists the selectable shipment categories.
var ShipmentTypeOptions = []RecordType{
	TypeSeaFreight,
	TypeAirFreight,
}

// DirectionOptions lists the trade directions.
var DirectionOptions = []TradeDirection{
	DirectionExport,
	DirectionImport,
}

// StatusOptions lists the record statuses. New records start OPEN.
var StatusOptions = []string{
	"OPEN",
	"IN PROGRESS",
	"CLOSED",
	"CANCELLED",
}

// ContainerTypeOptions lists the container size/type codes.
var ContainerTypeOptions = []string{
	"20GP",
	"40GP",
	"40HC",
	"20RF",
	"40RF",
	"20OT",
	"40OT",
	"LCL",
}

// PackageTypeOptions lists the packaging units.
var PackageTypeOptions = []string{
	"Pallets",
	"Cartons",
	"Crates",
	"Drums",
	"Bags",
	"Bundles",
	"Rolls",
	"Loose",
}

// VendorDocumentSlots lists the named document slots every vendor carries.
// Each slot is optional and independently replaceable.
var VendorDocumentSlots = []string{
	"gst_certificate",
	"pan_card",
	"cancelled_cheque",
	"msme_certificate",
	"declaration_form",
}

// VendorDocumentSlotLabel maps a slot key to its display name.
func VendorDocumentSlotLabel(slot string) string {
	switch slot {
	case "gst_certificate":
		return "GST Certificate"
	case "pan_card":
		return "PAN Card"
	case "cancelled_cheque":
		return "Cancelled Cheque"
	case "msme_certificate":
		return "MSME Certificate"
	case "declaration_form":
		return "Declaration Form"
	}
	return slot
}
