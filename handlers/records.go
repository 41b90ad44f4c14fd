package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
	"freightdesk/templates"
)

// HandleRecordList renders the active (non-retired) records of one family,
// newest first. A failed fetch renders the empty table with the error shown
// verbatim instead of a blank page.
func HandleRecordList(app *pocketbase.PocketBase, entity *services.Entity) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.RecordListData{
			EntityTitle: entityTitle(entity) + "s",
			BasePath:    basePath(entity),
		}

		records, err := services.ListActive(app, entity)
		if err != nil {
			log.Printf("records: could not list %s: %v", entity.Collection, err)
			data.ErrorMessage = err.Error()
		}
		data.TotalCount = len(records)
		for _, rec := range records {
			data.Items = append(data.Items, templates.RecordListItem{
				ID:        rec.Id,
				Number:    rec.GetString(entity.NumberField),
				Type:      rec.GetString(services.ColumnType),
				Direction: rec.GetString(services.ColumnDirection),
				Client:    rec.GetString("client"),
				Status:    rec.GetString(services.ColumnStatus),
				Created:   rec.GetDateTime("created").Time().Format("02 Jan 2006"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecordListContent(data)
		} else {
			component = templates.RecordListPage(data, GetHeaderData(e.Request, entity.Collection))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// groupTitle buckets a field key into a detail view section.
func groupTitle(key string) string {
	switch key {
	case "client", "exporter", "importer", "shipper", "consignee", "notifyParty":
		return "Parties"
	case "carrierName", "airlineName", "flightNumber", "vesselName", "voyageNumber",
		"portOfLoading", "portOfDischarge", "departureAirport", "destinationAirport",
		"fromLocation", "toLocation", "vehicleNumber", "driverName", "driverPhone",
		"etd", "eta", "tripDate":
		return "Routing"
	case "commodity", "cargoDescription", "serviceDescription", "grossWeight",
		"netWeight", "chargeableWeight", "cbm", "packages", "packageType",
		"containerNumber", "containerType", "sealNumber":
		return "Cargo"
	case "freightAmount", "originCharges", "destinationCharges":
		return "Charges"
	default:
		return "References"
	}
}

// buildFieldGroups arranges the record's visible fields into titled sections,
// preserving catalog order within each section.
func buildFieldGroups(entity *services.Entity, values map[string]string, t services.RecordType, dir services.TradeDirection) []templates.FieldGroup {
	order := []string{"Parties", "Routing", "Cargo", "Charges", "References"}
	byTitle := map[string]*templates.FieldGroup{}

	for _, f := range entity.VisibleFields(t, dir) {
		title := groupTitle(f.Key)
		g, ok := byTitle[title]
		if !ok {
			g = &templates.FieldGroup{Title: title}
			byTitle[title] = g
		}
		value := values[f.Key]
		if value != "" && groupTitle(f.Key) == "Charges" {
			if amount, err := strconv.ParseFloat(value, 64); err == nil {
				value = services.FormatINR(amount)
			}
		}
		g.Items = append(g.Items, templates.FieldGroupItem{
			Label: f.Label,
			Value: services.OrPlaceholder(value),
		})
	}

	var out []templates.FieldGroup
	for _, title := range order {
		if g, ok := byTitle[title]; ok && len(g.Items) > 0 {
			out = append(out, *g)
		}
	}
	return out
}

// HandleRecordView renders the read-only detail summary for one record.
func HandleRecordView(app *pocketbase.PocketBase, entity *services.Entity) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById(entity.Collection, id)
		if err != nil {
			log.Printf("records: could not find %s %s: %v", entity.Name, id, err)
			return ErrorToast(e, http.StatusNotFound, entityTitle(entity)+" not found")
		}

		t := services.RecordType(rec.GetString(services.ColumnType))
		dir := services.TradeDirection(rec.GetString(services.ColumnDirection))
		values := services.FromStorageRow(entity, services.RowFromRecord(entity, rec))

		data := templates.RecordViewData{
			EntityTitle: entityTitle(entity),
			BasePath:    basePath(entity),
			ID:          rec.Id,
			Number:      rec.GetString(entity.NumberField),
			Type:        string(t),
			Direction:   string(dir),
			Status:      rec.GetString(services.ColumnStatus),
			Groups:      buildFieldGroups(entity, values, t, dir),
		}
		if entity == services.ShipmentEntity {
			data.ExportPDF = basePath(entity) + "/" + rec.Id + "/pdf"
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecordViewContent(data)
		} else {
			component = templates.RecordViewPage(data, GetHeaderData(e.Request, entity.Collection))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleRecordDelete retires a record. The row keeps its data but leaves
// every active listing, so the record number stays traceable in exports
// of historical reports.
func HandleRecordDelete(app *pocketbase.PocketBase, entity *services.Entity) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if err := services.RetireRecord(app, entity, id); err != nil {
			log.Printf("records: could not retire %s %s: %v", entity.Name, id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete: "+err.Error())
		}
		SetToast(e, "success", entityTitle(entity)+" removed")
		e.Response.Header().Set("HX-Redirect", basePath(entity))
		return e.String(http.StatusOK, "")
	}
}
