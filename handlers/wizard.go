package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
	"freightdesk/templates"
)

// basePath returns the URL prefix for an entity's routes.
func basePath(entity *services.Entity) string {
	return "/" + entity.Collection
}

// entityTitle returns the capitalized singular name for headings.
func entityTitle(entity *services.Entity) string {
	if entity.Name == "" {
		return ""
	}
	return string(entity.Name[0]-'a'+'A') + entity.Name[1:]
}

// buildWizardData assembles the view data for the wizard's current state.
func buildWizardData(app *pocketbase.PocketBase, entity *services.Entity, w *services.Wizard, sessionID, errMsg string) templates.WizardData {
	data := templates.WizardData{
		EntityTitle:       entityTitle(entity),
		BasePath:          basePath(entity),
		SessionID:         sessionID,
		Step:              int(w.Step),
		StepLabel:         services.StepLabel(w.Step),
		Number:            w.Number(),
		SelectedType:      string(w.Type()),
		TypeError:         w.Errors["type"],
		SelectedDirection: string(w.Direction()),
		DirectionError:    w.Errors["direction"],
		Editing:           w.EditingID != "",
		ErrorMessage:      errMsg,
	}
	for _, t := range entity.Types {
		data.TypeOptions = append(data.TypeOptions, string(t))
	}
	for _, d := range services.DirectionOptions {
		data.DirectionOptions = append(data.DirectionOptions, string(d))
	}

	switch w.Step {
	case services.StepDetails:
		for _, f := range w.VisibleFields() {
			options := f.Options
			if f.Key == "linkedShipment" {
				options = shipmentNumberOptions(app, w.Type())
			}
			data.Fields = append(data.Fields, templates.WizardField{
				Label:    f.Label,
				Key:      f.Key,
				Kind:     string(f.Kind),
				Required: f.Required,
				Value:    w.Draft[f.Key],
				Error:    w.Errors[f.Key],
				Options:  options,
			})
		}
	case services.StepConfirm:
		data.Summary = append(data.Summary,
			templates.SummaryItem{Label: "Number", Value: w.Number()},
			templates.SummaryItem{Label: "Type", Value: string(w.Type())},
			templates.SummaryItem{Label: "Direction", Value: string(w.Direction())},
		)
		for _, f := range w.VisibleFields() {
			data.Summary = append(data.Summary, templates.SummaryItem{
				Label: f.Label,
				Value: services.OrPlaceholder(w.Draft[f.Key]),
			})
		}
	}
	return data
}

// shipmentNumberOptions lists active shipment numbers of the given type
// for the job wizard's linked shipment selector.
func shipmentNumberOptions(app *pocketbase.PocketBase, t services.RecordType) []string {
	records, err := app.FindRecordsByFilter(
		"shipments",
		"retired = false && type = {:type}",
		"shipment_number",
		0, 0,
		map[string]any{"type": string(t)},
	)
	if err != nil {
		log.Printf("wizard: could not list shipments for linking: %v", err)
		return nil
	}
	var out []string
	for _, rec := range records {
		out = append(out, rec.GetString("shipment_number"))
	}
	return out
}

func renderWizard(e *core.RequestEvent, data templates.WizardData, active string) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.WizardContent(data)
	} else {
		component = templates.WizardPage(data, GetHeaderData(e.Request, active))
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleWizardStart opens a fresh wizard session with a defaulted draft
// and a newly generated record number.
func HandleWizardStart(app *pocketbase.PocketBase, entity *services.Entity, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := services.GenerateRecordNumber(app, entity, time.Now())
		w := services.NewWizard(entity, number)
		sessionID := store.Open(w)
		return renderWizard(e, buildWizardData(app, entity, w, sessionID, ""), entity.Collection)
	}
}

// HandleWizardEdit opens a wizard seeded from an existing record, jumping
// straight to the details step.
func HandleWizardEdit(app *pocketbase.PocketBase, entity *services.Entity, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById(entity.Collection, id)
		if err != nil {
			log.Printf("wizard: could not find %s %s: %v", entity.Name, id, err)
			return ErrorToast(e, http.StatusNotFound, entityTitle(entity)+" not found")
		}

		row := services.RowFromRecord(entity, rec)
		w := services.SeedWizardFromRecord(entity, row, rec.Id)
		sessionID := store.Open(w)
		return renderWizard(e, buildWizardData(app, entity, w, sessionID, ""), entity.Collection)
	}
}

// HandleWizardStep receives every wizard form post. The pressed button
// names the transition; posted field values are folded into the draft
// before the transition runs.
func HandleWizardStep(app *pocketbase.PocketBase, entity *services.Entity, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sessionID := e.Request.PathValue("sessionId")
		w, ok := store.Get(sessionID)
		if !ok {
			SetToast(e, "warning", "Your draft has expired. Please start again.")
			e.Response.Header().Set("HX-Redirect", basePath(entity))
			return e.String(http.StatusGone, "")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		applyPostedValues(e, w)

		switch e.Request.FormValue("action") {
		case "cancel":
			store.Close(sessionID)
			SetToast(e, "info", "Draft discarded")
			e.Response.Header().Set("HX-Redirect", basePath(entity))
			return e.String(http.StatusOK, "")

		case "back":
			w.Back()
			return renderWizard(e, buildWizardData(app, entity, w, sessionID, ""), entity.Collection)

		case "confirm":
			return confirmWizard(app, entity, store, e, w, sessionID)

		default: // "next"
			w.Next()
			return renderWizard(e, buildWizardData(app, entity, w, sessionID, ""), entity.Collection)
		}
	}
}

// applyPostedValues folds the submitted form values into the draft for the
// wizard's current step.
func applyPostedValues(e *core.RequestEvent, w *services.Wizard) {
	switch w.Step {
	case services.StepSelectType:
		if v := e.Request.FormValue("type"); v != "" {
			w.SelectType(services.RecordType(v))
		}
	case services.StepSelectDirection:
		if v := e.Request.FormValue("direction"); v != "" {
			w.SelectDirection(services.TradeDirection(v))
		}
	case services.StepDetails:
		for _, f := range w.VisibleFields() {
			if _, present := e.Request.Form[f.Key]; present {
				w.SetField(f.Key, e.Request.FormValue(f.Key))
			}
		}
	}
}

// confirmWizard persists the draft. Store failures are surfaced verbatim
// and leave the wizard open with the draft intact so the user can retry
// without re-entering anything.
func confirmWizard(app *pocketbase.PocketBase, entity *services.Entity, store *services.SessionStore, e *core.RequestEvent, w *services.Wizard, sessionID string) error {
	if w.Step != services.StepConfirm {
		return renderWizard(e, buildWizardData(app, entity, w, sessionID, ""), entity.Collection)
	}

	row := services.ToStorageRow(entity, w.Draft, w.Type(), w.Direction())

	var err error
	if w.EditingID != "" {
		_, err = services.UpdateRecord(app, entity, w.EditingID, row)
	} else {
		_, err = services.CreateRecord(app, entity, row)
	}
	if err != nil {
		log.Printf("wizard: could not save %s: %v", entity.Name, err)
		return renderWizard(e, buildWizardData(app, entity, w, sessionID, err.Error()), entity.Collection)
	}

	store.Close(sessionID)
	verb := "created"
	if w.EditingID != "" {
		verb = "updated"
	}
	SetToast(e, "success", fmt.Sprintf("%s %s %s", entityTitle(entity), w.Number(), verb))
	e.Response.Header().Set("HX-Redirect", basePath(entity))
	return e.String(http.StatusOK, "")
}
