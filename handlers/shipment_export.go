package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/config"
	"freightdesk/services"
)

// HandleShipmentExportPDF streams the shipment advice document for one
// shipment as a PDF download.
func HandleShipmentExportPDF(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		data, err := services.BuildShipmentDocData(app, cfg.CompanyName, cfg.CompanyAddress, cfg.CompanyEmail, id)
		if err != nil {
			log.Printf("shipment_export: could not load shipment %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Shipment not found")
		}

		pdf, err := services.GenerateShipmentPDF(data)
		if err != nil {
			log.Printf("shipment_export: could not generate PDF for %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate PDF: "+err.Error())
		}

		filename := fmt.Sprintf("%s.pdf", data.ShipmentNumber)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		e.Response.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
		_, err = e.Response.Write(pdf)
		return err
	}
}
