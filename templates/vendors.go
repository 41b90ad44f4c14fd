package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// VendorDocumentItem is one named document slot of a vendor.
type VendorDocumentItem struct {
	Slot      string
	SlotLabel string
	FileName  string
	URL       string
	RecordID  string // vendor_documents row id, empty when the slot is vacant
}

// VendorFormData feeds the vendor create/edit form.
type VendorFormData struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	State       string
	Country     string
	GSTIN       string
	PAN         string
	BankName    string
	BankAccount string
	BankIFSC    string
	BankBranch  string
	Notes       string
	Declaration bool
	Documents   []VendorDocumentItem
	Errors      map[string]string
}

func vendorField(w io.Writer, label, name, value, errMsg string) {
	fmt.Fprintf(w, `<div class="form-field"><label for=%q>%s</label><input type="text" id=%q name=%q value=%q>`,
		name, esc(label), name, name, esc(value))
	fieldError(w, errMsg)
	io.WriteString(w, `</div>`)
}

// VendorFormContent renders the vendor form fragment.
func VendorFormContent(data VendorFormData) templ.Component {
	return component(func(w io.Writer) error {
		action := "/vendors"
		heading := "New Vendor"
		if data.ID != "" {
			action = fmt.Sprintf("/vendors/%s/save", data.ID)
			heading = "Edit Vendor"
		}
		fmt.Fprintf(w, `<div id="vendor-form"><h2>%s</h2>`, heading)
		fmt.Fprintf(w, `<form hx-post=%q hx-target="#vendor-form" hx-swap="outerHTML" hx-disabled-elt="find button">`, action)

		io.WriteString(w, `<fieldset><legend>BASIC INFORMATION</legend>`)
		vendorField(w, "VENDOR NAME", "name", data.Name, data.Errors["name"])
		vendorField(w, "Contact Name", "contact_name", data.ContactName, data.Errors["contact_name"])
		vendorField(w, "Phone", "phone", data.Phone, data.Errors["phone"])
		vendorField(w, "Email", "email", data.Email, data.Errors["email"])
		io.WriteString(w, `</fieldset>`)

		io.WriteString(w, `<fieldset><legend>ADDRESS</legend>`)
		vendorField(w, "Address", "address", data.Address, data.Errors["address"])
		vendorField(w, "City", "city", data.City, data.Errors["city"])
		vendorField(w, "State", "state", data.State, data.Errors["state"])
		vendorField(w, "Country", "country", data.Country, data.Errors["country"])
		io.WriteString(w, `</fieldset>`)

		io.WriteString(w, `<fieldset><legend>TAX</legend>`)
		vendorField(w, "GSTIN", "gstin", data.GSTIN, data.Errors["gstin"])
		vendorField(w, "PAN", "pan", data.PAN, data.Errors["pan"])
		io.WriteString(w, `</fieldset>`)

		io.WriteString(w, `<fieldset><legend>BANK DETAILS</legend>`)
		vendorField(w, "Bank Name", "bank_name", data.BankName, data.Errors["bank_name"])
		vendorField(w, "Account Number", "bank_account_no", data.BankAccount, data.Errors["bank_account_no"])
		vendorField(w, "IFSC", "bank_ifsc", data.BankIFSC, data.Errors["bank_ifsc"])
		vendorField(w, "Branch", "bank_branch", data.BankBranch, data.Errors["bank_branch"])
		io.WriteString(w, `</fieldset>`)

		checked := ""
		if data.Declaration {
			checked = " checked"
		}
		fmt.Fprintf(w, `<label class="checkbox"><input type="checkbox" name="declaration" value="true"%s> Declaration on file</label>`, checked)
		vendorField(w, "Notes", "notes", data.Notes, data.Errors["notes"])

		io.WriteString(w, `<div class="form-actions"><button type="submit">Save</button><a class="btn" href="/vendors">Cancel</a></div></form>`)

		// Document slots only exist once the vendor is saved.
		if data.ID != "" {
			io.WriteString(w, `<section class="vendor-documents"><h3>DOCUMENTS</h3>`)
			for _, doc := range data.Documents {
				fmt.Fprintf(w, `<div class="doc-slot"><span class="doc-label">%s</span>`, esc(doc.SlotLabel))
				if doc.RecordID != "" {
					fmt.Fprintf(w, `<a href=%q target="_blank">%s</a>`, doc.URL, esc(doc.FileName))
					fmt.Fprintf(w,
						`<button class="btn btn-danger" hx-delete="/vendors/%s/documents/%s" hx-confirm="Remove %s?" hx-target="#vendor-form" hx-swap="outerHTML">Remove</button>`,
						data.ID, doc.RecordID, esc(doc.SlotLabel))
				} else {
					fmt.Fprintf(w,
						`<form hx-post="/vendors/%s/documents/%s" hx-encoding="multipart/form-data" hx-target="#vendor-form" hx-swap="outerHTML" hx-disabled-elt="find button"><input type="file" name="document" required><button type="submit">Upload</button></form>`,
						data.ID, doc.Slot)
				}
				io.WriteString(w, `</div>`)
			}
			io.WriteString(w, `</section>`)
		}

		io.WriteString(w, `</div>`)
		return nil
	})
}

// VendorFormPage renders the vendor form inside the page shell.
func VendorFormPage(data VendorFormData, header HeaderData) templ.Component {
	return Shell("Vendors", header, VendorFormContent(data))
}

// VendorListItem is one row of the vendor table.
type VendorListItem struct {
	ID          string
	Name        string
	City        string
	GSTIN       string
	ContactName string
	Phone       string
	Declaration bool
}

// VendorListData feeds the vendor list view.
type VendorListData struct {
	Vendors      []VendorListItem
	SearchQuery  string
	TotalCount   int
	ErrorMessage string
}

// VendorListContent renders the vendor table fragment.
func VendorListContent(data VendorListData) templ.Component {
	return component(func(w io.Writer) error {
		io.WriteString(w, `<div id="vendor-list">`)
		ErrorBanner(w, data.ErrorMessage)
		fmt.Fprintf(w, `<div class="list-header"><h2>Vendors</h2><span class="count">%d vendors</span><a class="btn btn-primary" href="/vendors/create">+ New Vendor</a></div>`, data.TotalCount)
		fmt.Fprintf(w,
			`<form hx-get="/vendors" hx-target="#vendor-list" hx-swap="outerHTML"><input type="search" name="q" value=%q placeholder="Search vendors"><button type="submit">Search</button></form>`,
			esc(data.SearchQuery))

		if len(data.Vendors) == 0 {
			io.WriteString(w, `<p class="empty-state">No vendors found.</p></div>`)
			return nil
		}

		io.WriteString(w, `<table><thead><tr><th>Name</th><th>City</th><th>GSTIN</th><th>Contact</th><th>Phone</th><th>Declaration</th><th></th></tr></thead><tbody>`)
		for _, v := range data.Vendors {
			decl := "No"
			if v.Declaration {
				decl = "Yes"
			}
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
				esc(v.Name), esc(v.City), esc(v.GSTIN), esc(v.ContactName), esc(v.Phone), decl)
			io.WriteString(w, `<td class="row-actions" onclick="event.stopPropagation()">`)
			fmt.Fprintf(w, `<a class="btn" href="/vendors/%s/edit">Edit</a>`, v.ID)
			fmt.Fprintf(w,
				`<button class="btn btn-danger" hx-delete="/vendors/%s" hx-confirm="Delete vendor %s?" hx-disabled-elt="this">Delete</button>`,
				v.ID, esc(v.Name))
			io.WriteString(w, `</td></tr>`)
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

// VendorListPage renders the vendor list inside the page shell.
func VendorListPage(data VendorListData, header HeaderData) templ.Component {
	return Shell("Vendors", header, VendorListContent(data))
}
