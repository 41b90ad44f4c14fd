package handlers

import (
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
	"freightdesk/templates"
)

// HandleVendorList renders the searchable vendor table.
func HandleVendorList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		data := templates.VendorListData{SearchQuery: query}

		filter := ""
		params := map[string]any{}
		if query != "" {
			filter = "name ~ {:q} || city ~ {:q} || gstin ~ {:q} || contact_name ~ {:q}"
			params["q"] = query
		}

		records, err := app.FindRecordsByFilter("vendors", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("vendors: could not list vendors: %v", err)
			data.ErrorMessage = err.Error()
		}
		data.TotalCount = len(records)
		for _, rec := range records {
			data.Vendors = append(data.Vendors, templates.VendorListItem{
				ID:          rec.Id,
				Name:        rec.GetString("name"),
				City:        rec.GetString("city"),
				GSTIN:       rec.GetString("gstin"),
				ContactName: rec.GetString("contact_name"),
				Phone:       rec.GetString("phone"),
				Declaration: rec.GetBool("declaration"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.VendorListContent(data)
		} else {
			component = templates.VendorListPage(data, GetHeaderData(e.Request, "vendors"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// vendorFormFromRequest trims and collects the posted vendor fields.
func vendorFormFromRequest(r *http.Request) templates.VendorFormData {
	get := func(name string) string { return strings.TrimSpace(r.FormValue(name)) }
	return templates.VendorFormData{
		Name:        get("name"),
		ContactName: get("contact_name"),
		Phone:       get("phone"),
		Email:       get("email"),
		Address:     get("address"),
		City:        get("city"),
		State:       get("state"),
		Country:     get("country"),
		GSTIN:       get("gstin"),
		PAN:         get("pan"),
		BankName:    get("bank_name"),
		BankAccount: get("bank_account_no"),
		BankIFSC:    get("bank_ifsc"),
		BankBranch:  get("bank_branch"),
		Notes:       get("notes"),
		Declaration: r.FormValue("declaration") == "true",
		Errors:      map[string]string{},
	}
}

func validateVendorForm(data *templates.VendorFormData) bool {
	if data.Name == "" {
		data.Errors["name"] = "Vendor name is required"
	}
	if data.Email != "" && !strings.Contains(data.Email, "@") {
		data.Errors["email"] = "Enter a valid email address"
	}
	return len(data.Errors) == 0
}

func applyVendorForm(rec *core.Record, data templates.VendorFormData) {
	rec.Set("name", data.Name)
	rec.Set("contact_name", data.ContactName)
	rec.Set("phone", data.Phone)
	rec.Set("email", data.Email)
	rec.Set("address", data.Address)
	rec.Set("city", data.City)
	rec.Set("state", data.State)
	rec.Set("country", data.Country)
	rec.Set("gstin", data.GSTIN)
	rec.Set("pan", data.PAN)
	rec.Set("bank_name", data.BankName)
	rec.Set("bank_account_no", data.BankAccount)
	rec.Set("bank_ifsc", data.BankIFSC)
	rec.Set("bank_branch", data.BankBranch)
	rec.Set("notes", data.Notes)
	rec.Set("declaration", data.Declaration)
}

func vendorFormFromRecord(rec *core.Record) templates.VendorFormData {
	return templates.VendorFormData{
		ID:          rec.Id,
		Name:        rec.GetString("name"),
		ContactName: rec.GetString("contact_name"),
		Phone:       rec.GetString("phone"),
		Email:       rec.GetString("email"),
		Address:     rec.GetString("address"),
		City:        rec.GetString("city"),
		State:       rec.GetString("state"),
		Country:     rec.GetString("country"),
		GSTIN:       rec.GetString("gstin"),
		PAN:         rec.GetString("pan"),
		BankName:    rec.GetString("bank_name"),
		BankAccount: rec.GetString("bank_account_no"),
		BankIFSC:    rec.GetString("bank_ifsc"),
		BankBranch:  rec.GetString("bank_branch"),
		Notes:       rec.GetString("notes"),
		Declaration: rec.GetBool("declaration"),
		Errors:      map[string]string{},
	}
}

// loadVendorDocuments fills every document slot, vacant or occupied, in the
// fixed slot order.
func loadVendorDocuments(app *pocketbase.PocketBase, vendorID string) []templates.VendorDocumentItem {
	records, err := app.FindRecordsByFilter(
		"vendor_documents",
		"vendor = {:vendor}",
		"slot", 0, 0,
		map[string]any{"vendor": vendorID},
	)
	if err != nil {
		log.Printf("vendors: could not list documents for %s: %v", vendorID, err)
	}
	bySlot := map[string]*core.Record{}
	for _, rec := range records {
		bySlot[rec.GetString("slot")] = rec
	}

	var out []templates.VendorDocumentItem
	for _, slot := range services.VendorDocumentSlots {
		item := templates.VendorDocumentItem{
			Slot:      slot,
			SlotLabel: services.VendorDocumentSlotLabel(slot),
		}
		if rec, ok := bySlot[slot]; ok {
			item.RecordID = rec.Id
			item.FileName = rec.GetString("name")
			item.URL = fmt.Sprintf("/api/files/vendor_documents/%s/%s", rec.Id, rec.GetString("document"))
		}
		out = append(out, item)
	}
	return out
}

func renderVendorForm(e *core.RequestEvent, data templates.VendorFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.VendorFormContent(data)
	} else {
		component = templates.VendorFormPage(data, GetHeaderData(e.Request, "vendors"))
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleVendorCreatePage renders a blank vendor form.
func HandleVendorCreatePage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderVendorForm(e, templates.VendorFormData{Errors: map[string]string{}})
	}
}

// HandleVendorCreate saves a new vendor and moves to edit mode so the
// document slots become available.
func HandleVendorCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := vendorFormFromRequest(e.Request)
		if !validateVendorForm(&data) {
			return renderVendorForm(e, data)
		}

		collection, err := app.FindCollectionByNameOrId("vendors")
		if err != nil {
			return ErrorToast(e, http.StatusInternalServerError, "Vendors unavailable")
		}
		rec := core.NewRecord(collection)
		applyVendorForm(rec, data)
		if err := app.Save(rec); err != nil {
			log.Printf("vendors: could not create vendor: %v", err)
			data.Errors["name"] = err.Error()
			return renderVendorForm(e, data)
		}

		SetToast(e, "success", "Vendor "+data.Name+" created")
		e.Response.Header().Set("HX-Redirect", "/vendors/"+rec.Id+"/edit")
		return e.String(http.StatusOK, "")
	}
}

// HandleVendorEditPage renders the form pre-filled from the stored vendor,
// including its document slots.
func HandleVendorEditPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("vendors", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}
		data := vendorFormFromRecord(rec)
		data.Documents = loadVendorDocuments(app, rec.Id)
		return renderVendorForm(e, data)
	}
}

// HandleVendorSave updates an existing vendor.
func HandleVendorSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("vendors", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}

		data := vendorFormFromRequest(e.Request)
		data.ID = rec.Id
		if !validateVendorForm(&data) {
			data.Documents = loadVendorDocuments(app, rec.Id)
			return renderVendorForm(e, data)
		}

		applyVendorForm(rec, data)
		if err := app.Save(rec); err != nil {
			log.Printf("vendors: could not update vendor %s: %v", rec.Id, err)
			data.Errors["name"] = err.Error()
			data.Documents = loadVendorDocuments(app, rec.Id)
			return renderVendorForm(e, data)
		}

		SetToast(e, "success", "Vendor "+data.Name+" updated")
		data.Documents = loadVendorDocuments(app, rec.Id)
		return renderVendorForm(e, data)
	}
}

// HandleVendorDelete removes a vendor outright. Attached documents go with
// it through the cascading relation.
func HandleVendorDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("vendors", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}
		if err := app.Delete(rec); err != nil {
			log.Printf("vendors: could not delete vendor %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete: "+err.Error())
		}
		SetToast(e, "success", "Vendor "+rec.GetString("name")+" deleted")
		e.Response.Header().Set("HX-Redirect", "/vendors")
		return e.String(http.StatusOK, "")
	}
}

// HandleVendorDocumentUpload stores an uploaded file into one named slot.
// A second upload to an occupied slot is rejected; remove the existing file
// first.
func HandleVendorDocumentUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendor, err := app.FindRecordById("vendors", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}
		slot := e.Request.PathValue("slot")
		if !slices.Contains(services.VendorDocumentSlots, slot) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown document slot")
		}

		existing, _ := app.FindRecordsByFilter(
			"vendor_documents",
			"vendor = {:vendor} && slot = {:slot}",
			"", 1, 0,
			map[string]any{"vendor": vendor.Id, "slot": slot},
		)
		if len(existing) > 0 {
			return ErrorToast(e, http.StatusConflict, "Slot already has a document")
		}

		files, err := e.FindUploadedFiles("document")
		if err != nil || len(files) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "No file uploaded")
		}

		collection, err := app.FindCollectionByNameOrId("vendor_documents")
		if err != nil {
			return ErrorToast(e, http.StatusInternalServerError, "Documents unavailable")
		}
		rec := core.NewRecord(collection)
		rec.Set("vendor", vendor.Id)
		rec.Set("slot", slot)
		rec.Set("name", files[0].OriginalName)
		rec.Set("document", files[0])
		if err := app.Save(rec); err != nil {
			log.Printf("vendors: could not store document for %s/%s: %v", vendor.Id, slot, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not store document: "+err.Error())
		}

		SetToast(e, "success", services.VendorDocumentSlotLabel(slot)+" uploaded")
		data := vendorFormFromRecord(vendor)
		data.Documents = loadVendorDocuments(app, vendor.Id)
		return renderVendorForm(e, data)
	}
}

// HandleVendorDocumentDelete removes one stored document and vacates its
// slot.
func HandleVendorDocumentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendor, err := app.FindRecordById("vendors", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}
		doc, err := app.FindRecordById("vendor_documents", e.Request.PathValue("docId"))
		if err != nil || doc.GetString("vendor") != vendor.Id {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		if err := app.Delete(doc); err != nil {
			log.Printf("vendors: could not delete document %s: %v", doc.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not remove document: "+err.Error())
		}

		data := vendorFormFromRecord(vendor)
		data.Documents = loadVendorDocuments(app, vendor.Id)
		return renderVendorForm(e, data)
	}
}
