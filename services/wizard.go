package services

import "strings"

// WizardStep identifies one step of the record creation wizard.
type WizardStep int

const (
	StepSelectType WizardStep = iota
	StepSelectDirection
	StepDetails
	StepConfirm
)

// StepLabel returns the heading shown for a step.
func StepLabel(s WizardStep) string {
	switch s {
	case StepSelectType:
		return "Select Type"
	case StepSelectDirection:
		return "Select Direction"
	case StepDetails:
		return "Enter Details"
	case StepConfirm:
		return "Confirm"
	}
	return ""
}

// Reserved draft keys that are not catalog fields.
const (
	draftKeyType      = "type"
	draftKeyDirection = "direction"
	draftKeyNumber    = "number"
)

// Wizard is the per-session form state machine for creating or editing one
// record. It owns a mutable draft, a per-field error map and the current
// step. A wizard is exclusively owned by one session; it is never shared.
type Wizard struct {
	Entity *Entity
	Draft  map[string]string
	Errors map[string]string
	Step   WizardStep

	// EditingID is set when the wizard was seeded from an existing record;
	// confirming then updates that record instead of inserting a new one.
	EditingID string
}

// NewWizard opens a wizard with a defaulted draft carrying the given
// generated record number.
func NewWizard(entity *Entity, number string) *Wizard {
	return &Wizard{
		Entity: entity,
		Draft:  map[string]string{draftKeyNumber: number},
		Errors: map[string]string{},
		Step:   StepSelectType,
	}
}

// Number returns the draft's business identifier.
func (w *Wizard) Number() string { return w.Draft[draftKeyNumber] }

// Type returns the selected record type, empty until chosen.
func (w *Wizard) Type() RecordType { return RecordType(w.Draft[draftKeyType]) }

// Direction returns the selected trade direction, empty until chosen.
func (w *Wizard) Direction() TradeDirection {
	return TradeDirection(w.Draft[draftKeyDirection])
}

// VisibleFields returns the catalog fields applicable to the current type
// and direction selection.
func (w *Wizard) VisibleFields() []FieldDef {
	return w.Entity.VisibleFields(w.Type(), w.Direction())
}

// SetField records a field edit. A non-empty value clears that field's
// error immediately; other errors are untouched.
func (w *Wizard) SetField(key, value string) {
	w.Draft[key] = value
	if strings.TrimSpace(value) != "" {
		delete(w.Errors, key)
	}
}

// SelectType sets the record type. Fields already entered stay as they are,
// but the linked shipment reference is dropped: it was chosen against the
// previous type and no longer matches.
func (w *Wizard) SelectType(t RecordType) {
	if w.Type() != t {
		delete(w.Draft, "linkedShipment")
	}
	w.Draft[draftKeyType] = string(t)
	delete(w.Errors, draftKeyType)
}

// SelectDirection sets the trade direction.
func (w *Wizard) SelectDirection(d TradeDirection) {
	w.Draft[draftKeyDirection] = string(d)
	delete(w.Errors, draftKeyDirection)
}

// Next validates the current step. On success it advances one step, clamped
// to the confirm step; on failure it records the errors and stays put.
// It reports whether the wizard advanced.
func (w *Wizard) Next() bool {
	errs := w.validateStep()
	if len(errs) > 0 {
		for k, v := range errs {
			w.Errors[k] = v
		}
		return false
	}
	if w.Step < StepConfirm {
		w.Step++
	}
	return true
}

// Back moves one step back without validating, clamped to the first step.
func (w *Wizard) Back() {
	if w.Step > StepSelectType {
		w.Step--
	}
}

// Cancel discards all user input: the draft is reset to defaults around a
// freshly generated number, errors are cleared and the wizard returns to
// the first step.
func (w *Wizard) Cancel(newNumber string) {
	w.Draft = map[string]string{draftKeyNumber: newNumber}
	w.Errors = map[string]string{}
	w.Step = StepSelectType
	w.EditingID = ""
}

// validateStep checks only the requirements of the current step. Details
// validation is pure presence checking: every visible required field must
// be non-empty after trimming. Numeric and date fields follow the same
// rule; there is no range or format checking.
func (w *Wizard) validateStep() map[string]string {
	errs := map[string]string{}
	switch w.Step {
	case StepSelectType:
		if w.Type() == "" {
			errs[draftKeyType] = "Select a type to continue"
		}
	case StepSelectDirection:
		if w.Direction() == "" {
			errs[draftKeyDirection] = "Select a direction to continue"
		}
	case StepDetails:
		for _, f := range w.VisibleFields() {
			if !f.Required {
				continue
			}
			if strings.TrimSpace(w.Draft[f.Key]) == "" {
				errs[f.Key] = f.Label + " is required"
			}
		}
	}
	return errs
}

// SeedWizardFromRecord opens a wizard in edit mode: the draft is filled via
// the inverse storage mapping and the wizard jumps straight to the details
// step, skipping type and direction re-selection.
func SeedWizardFromRecord(entity *Entity, row map[string]any, recordID string) *Wizard {
	w := &Wizard{
		Entity:    entity,
		Draft:     FromStorageRow(entity, row),
		Errors:    map[string]string{},
		Step:      StepDetails,
		EditingID: recordID,
	}
	return w
}
