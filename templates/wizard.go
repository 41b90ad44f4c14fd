package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// WizardField is one rendered form field of the details step.
type WizardField struct {
	Label    string
	Key      string
	Kind     string // text | number | date | select
	Required bool
	Value    string
	Error    string
	Options  []string
}

// SummaryItem is one label/value pair of the confirm step.
type SummaryItem struct {
	Label string
	Value string
}

// WizardData feeds the multi-step record wizard.
type WizardData struct {
	EntityTitle string // "Job" or "Shipment"
	BasePath    string // "/jobs" or "/shipments"
	SessionID   string
	Step        int
	StepLabel   string
	Number      string

	TypeOptions       []string
	SelectedType      string
	TypeError         string
	DirectionOptions  []string
	SelectedDirection string
	DirectionError    string

	Fields  []WizardField
	Summary []SummaryItem
	Editing bool

	// ErrorMessage carries a store failure verbatim; the wizard stays open
	// and the draft intact so the user can retry.
	ErrorMessage string
}

func fieldError(w io.Writer, msg string) {
	if msg != "" {
		fmt.Fprintf(w, `<span class="field-error">%s</span>`, esc(msg))
	}
}

func wizardInput(w io.Writer, f WizardField) {
	fmt.Fprintf(w, `<div class="form-field"><label for=%q>%s</label>`, f.Key, esc(f.Label))
	switch f.Kind {
	case "select":
		fmt.Fprintf(w, `<select id=%q name=%q>`, f.Key, f.Key)
		io.WriteString(w, `<option value=""></option>`)
		for _, opt := range f.Options {
			selected := ""
			if opt == f.Value {
				selected = " selected"
			}
			fmt.Fprintf(w, `<option value=%q%s>%s</option>`, esc(opt), selected, esc(opt))
		}
		io.WriteString(w, `</select>`)
	case "number":
		fmt.Fprintf(w, `<input type="number" step="any" id=%q name=%q value=%q>`, f.Key, f.Key, esc(f.Value))
	case "date":
		fmt.Fprintf(w, `<input type="date" id=%q name=%q value=%q>`, f.Key, f.Key, esc(f.Value))
	default:
		fmt.Fprintf(w, `<input type="text" id=%q name=%q value=%q>`, f.Key, f.Key, esc(f.Value))
	}
	fieldError(w, f.Error)
	io.WriteString(w, `</div>`)
}

// WizardContent renders the current wizard step as an HTMX fragment.
func WizardContent(data WizardData) templ.Component {
	return component(func(w io.Writer) error {
		fmt.Fprintf(w, `<div id="wizard" class="wizard" data-step="%d">`, data.Step)
		ErrorBanner(w, data.ErrorMessage)

		heading := fmt.Sprintf("New %s", data.EntityTitle)
		if data.Editing {
			heading = fmt.Sprintf("Edit %s", data.EntityTitle)
		}
		fmt.Fprintf(w, `<h2>%s — %s</h2><p class="record-number">%s</p>`,
			esc(heading), esc(data.StepLabel), esc(data.Number))

		// The whole step is one form; the pressed button selects the
		// transition. Buttons disable themselves while the request is in
		// flight so a slow store cannot be double-submitted.
		fmt.Fprintf(w,
			`<form hx-post="%s/wizard/%s" hx-target="#wizard" hx-swap="outerHTML" hx-disabled-elt="find button">`,
			data.BasePath, data.SessionID)

		switch data.Step {
		case 0:
			io.WriteString(w, `<fieldset><legend>TYPE</legend>`)
			for _, t := range data.TypeOptions {
				checked := ""
				if t == data.SelectedType {
					checked = " checked"
				}
				fmt.Fprintf(w, `<label class="radio"><input type="radio" name="type" value=%q%s> %s</label>`,
					esc(t), checked, esc(t))
			}
			fieldError(w, data.TypeError)
			io.WriteString(w, `</fieldset>`)
		case 1:
			io.WriteString(w, `<fieldset><legend>TRADE DIRECTION</legend>`)
			for _, d := range data.DirectionOptions {
				checked := ""
				if d == data.SelectedDirection {
					checked = " checked"
				}
				fmt.Fprintf(w, `<label class="radio"><input type="radio" name="direction" value=%q%s> %s</label>`,
					esc(d), checked, esc(d))
			}
			fieldError(w, data.DirectionError)
			io.WriteString(w, `</fieldset>`)
		case 2:
			fmt.Fprintf(w, `<fieldset><legend>%s DETAILS</legend>`, esc(data.SelectedType))
			for _, f := range data.Fields {
				wizardInput(w, f)
			}
			io.WriteString(w, `</fieldset>`)
		default:
			io.WriteString(w, `<dl class="summary">`)
			for _, item := range data.Summary {
				fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`, esc(item.Label), esc(item.Value))
			}
			io.WriteString(w, `</dl>`)
		}

		io.WriteString(w, `<div class="wizard-actions">`)
		// Edit mode starts at the details step, so Back only applies from
		// the confirmation summary, where it returns to the details.
		if data.Step > 0 && (!data.Editing || data.Step == 3) {
			io.WriteString(w, `<button type="submit" name="action" value="back">Back</button>`)
		}
		if data.Step < 3 {
			io.WriteString(w, `<button type="submit" name="action" value="next">Next</button>`)
		} else {
			label := "Confirm & Save"
			if data.Editing {
				label = "Confirm & Update"
			}
			fmt.Fprintf(w, `<button type="submit" name="action" value="confirm">%s</button>`, label)
		}
		io.WriteString(w, `<button type="submit" name="action" value="cancel" formnovalidate>Cancel</button>`)
		io.WriteString(w, `</div></form></div>`)
		return nil
	})
}

// WizardPage renders the wizard inside the full page shell.
func WizardPage(data WizardData, header HeaderData) templ.Component {
	return Shell(data.EntityTitle+" Wizard", header, WizardContent(data))
}
