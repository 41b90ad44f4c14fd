package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	docLabelStyle = props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	docValueStyle = props.Text{
		Size:  8,
		Align: align.Left,
	}
	docRightLabelStyle = props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	docRightValueStyle = props.Text{
		Size:  8,
		Align: align.Right,
	}
)

// GenerateShipmentPDF renders the fixed-layout shipment advice document
// using maroto/v2 and returns the raw PDF bytes.
func GenerateShipmentPDF(data *ShipmentDocData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addDocHeader(m, data)
	addPartiesBlock(m, data)
	addCarrierBlock(m, data)
	addGoodsBlock(m, data)
	addChargesBlock(m, data)
	addDocFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate shipment PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addDocHeader adds the company letterhead, document title and shipment number.
func addDocHeader(m core.Maroto, data *ShipmentDocData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("SHIPMENT ADVICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.CompanyAddress, data.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Shipment #: %s", data.ShipmentNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("%s / %s", data.Type, data.Direction), docValueStyle)),
			col.New(3).Add(text.New("Status:", docRightLabelStyle)),
			col.New(3).Add(text.New(data.Status, docRightValueStyle)),
		),
	)
	m.AddRows(row.New(3))
}

// addPartiesBlock adds the shipper and consignee blocks side by side,
// followed by the notify party and client line.
func addPartiesBlock(m core.Maroto, data *ShipmentDocData) {
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("SHIPPER", docLabelStyle)),
			col.New(6).Add(text.New("CONSIGNEE", docLabelStyle)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(data.Shipper, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left})),
			col.New(6).Add(text.New(data.Consignee, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Exporter: %s", data.Exporter), docValueStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("Importer: %s", data.Importer), docValueStyle)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Client: %s", data.Client), docValueStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("Notify Party: %s", data.NotifyParty), docValueStyle)),
		),
	)
	m.AddRows(row.New(3))
}

// addCarrierBlock adds carrier, routing and transport document details.
func addCarrierBlock(m core.Maroto, data *ShipmentDocData) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("CARRIER & ROUTING", docLabelStyle)),
		),
		row.New(7).Add(
			col.New(3).Add(text.New("Carrier:", docLabelStyle)),
			col.New(3).Add(text.New(data.Carrier, docValueStyle)),
			col.New(3).Add(text.New(data.DocumentLabel+":", docRightLabelStyle)),
			col.New(3).Add(text.New(data.DocumentNumber, docRightValueStyle)),
		),
		row.New(7).Add(
			col.New(3).Add(text.New("Origin:", docLabelStyle)),
			col.New(3).Add(text.New(data.Origin, docValueStyle)),
			col.New(3).Add(text.New("Doc Date:", docRightLabelStyle)),
			col.New(3).Add(text.New(data.DocumentDate, docRightValueStyle)),
		),
		row.New(7).Add(
			col.New(3).Add(text.New("Destination:", docLabelStyle)),
			col.New(3).Add(text.New(data.Destination, docValueStyle)),
			col.New(3).Add(text.New("ETD / ETA:", docRightLabelStyle)),
			col.New(3).Add(text.New(fmt.Sprintf("%s / %s", data.ETD, data.ETA), docRightValueStyle)),
		),
		row.New(7).Add(
			col.New(3).Add(text.New("Vessel / Flight:", docLabelStyle)),
			col.New(3).Add(text.New(fmt.Sprintf("%s %s %s", data.VesselName, data.VoyageNumber, data.FlightNumber), docValueStyle)),
			col.New(3).Add(text.New("Container:", docRightLabelStyle)),
			col.New(3).Add(text.New(fmt.Sprintf("%s (%s) Seal %s", data.ContainerNumber, data.ContainerType, data.SealNumber), docRightValueStyle)),
		),
	)
	m.AddRows(row.New(3))
}

// addGoodsBlock adds the goods description table.
func addGoodsBlock(m core.Maroto, data *ShipmentDocData) {
	headerStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	cellStyle := props.Text{Size: 8, Align: align.Left}
	fill := &props.Color{Red: 31, Green: 58, Blue: 95}

	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New("GOODS", docLabelStyle))),
		row.New(7).WithStyle(&props.Cell{BackgroundColor: fill}).Add(
			col.New(4).Add(text.New("Commodity", headerStyle)),
			col.New(2).Add(text.New("Packages", headerStyle)),
			col.New(2).Add(text.New("Gross Wt", headerStyle)),
			col.New(2).Add(text.New("Net / Chrg Wt", headerStyle)),
			col.New(2).Add(text.New("CBM", headerStyle)),
		),
		row.New(7).Add(
			col.New(4).Add(text.New(data.Commodity, cellStyle)),
			col.New(2).Add(text.New(fmt.Sprintf("%s %s", data.Packages, data.PackageType), cellStyle)),
			col.New(2).Add(text.New(data.GrossWeight, cellStyle)),
			col.New(2).Add(text.New(fmt.Sprintf("%s / %s", data.NetWeight, data.ChargeableWeight), cellStyle)),
			col.New(2).Add(text.New(data.CBM, cellStyle)),
		),
	)
	m.AddRows(row.New(3))
}

// addChargesBlock adds the freight and local charges summary.
func addChargesBlock(m core.Maroto, data *ShipmentDocData) {
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New("CHARGES", docLabelStyle))),
		row.New(6).Add(
			col.New(8).Add(text.New("Freight", docValueStyle)),
			col.New(4).Add(text.New(data.FreightAmount, docRightValueStyle)),
		),
		row.New(6).Add(
			col.New(8).Add(text.New("Origin Charges", docValueStyle)),
			col.New(4).Add(text.New(data.OriginCharges, docRightValueStyle)),
		),
		row.New(6).Add(
			col.New(8).Add(text.New("Destination Charges", docValueStyle)),
			col.New(4).Add(text.New(data.DestinationCharges, docRightValueStyle)),
		),
		row.New(7).Add(
			col.New(8).Add(text.New("Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left})),
			col.New(4).Add(text.New(data.TotalCharges, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
	)
	m.AddRows(row.New(3))
}

// addDocFooter adds remarks and the signature line.
func addDocFooter(m core.Maroto, data *ShipmentDocData) {
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New("REMARKS", docLabelStyle))),
		row.New(8).Add(col.New(12).Add(text.New(data.Remarks, docValueStyle))),
		row.New(12),
		row.New(7).Add(
			col.New(6).Add(text.New("Prepared By", docLabelStyle)),
			col.New(6).Add(text.New("Authorised Signatory", docRightLabelStyle)),
		),
	)
}
