package templates

import "github.com/engineer-dilnawaz/dynamic-forms/model"

// Template is a canned {name, fields} bundle the schema builder can load
// verbatim as a starting point.
type Template struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Fields []model.FieldSchema `json:"fields"`
}

// Clear resets the builder to an empty draft.
var Clear = Template{ID: "clear"}

// Catalog lists the built-in examples offered by the builder, Clear last.
var Catalog = []Template{
	{
		ID:   "vehicles",
		Name: "Vehicles",
		Fields: []model.FieldSchema{
			{ID: "tpl-vehicle-brand", Name: "brand", Label: "Brand", Type: model.TypeString, UI: model.UiText, Required: true},
			{ID: "tpl-vehicle-model", Name: "model", Label: "Model", Type: model.TypeString, UI: model.UiText, Required: true},
			{ID: "tpl-vehicle-fuel", Name: "fuel", Label: "Fuel", Type: model.TypeString, UI: model.UiSelect, Options: []model.FieldOption{
				{Label: "Petrol", Value: "Petrol"},
				{Label: "Diesel", Value: "Diesel"},
				{Label: "Electric", Value: "Electric"},
			}},
			{ID: "tpl-vehicle-registered", Name: "registered", Label: "Registered", Type: model.TypeBoolean, UI: model.UiSwitch},
			{ID: "tpl-vehicle-purchase-date", Name: "purchase_date", Label: "Purchase Date", Type: model.TypeDate, UI: model.UiDate},
		},
	},
	{
		ID:   "onboarding",
		Name: "Employee Onboarding",
		Fields: []model.FieldSchema{
			{ID: "tpl-onboarding-full-name", Name: "full_name", Label: "Full Name", Type: model.TypeString, UI: model.UiText, Required: true},
			{ID: "tpl-onboarding-department", Name: "department", Label: "Department", Type: model.TypeString, UI: model.UiSelect, Required: true, Options: []model.FieldOption{
				{Label: "Engineering", Value: "Engineering"},
				{Label: "Sales", Value: "Sales"},
				{Label: "Support", Value: "Support"},
			}},
			{ID: "tpl-onboarding-start-date", Name: "start_date", Label: "Start Date", Type: model.TypeDate, UI: model.UiDate, Required: true},
			{ID: "tpl-onboarding-remote", Name: "remote", Label: "Works Remotely", Type: model.TypeBoolean, UI: model.UiSwitch},
			{ID: "tpl-onboarding-notes", Name: "notes", Label: "Notes", Type: model.TypeString, UI: model.UiTextarea},
		},
	},
	{
		ID:   "expenses",
		Name: "Expenses",
		Fields: []model.FieldSchema{
			{ID: "tpl-expense-description", Name: "description", Label: "Description", Type: model.TypeString, UI: model.UiText, Required: true},
			{ID: "tpl-expense-amount", Name: "amount", Label: "Amount", Type: model.TypeNumber, UI: model.UiNumber, Required: true},
			{ID: "tpl-expense-date", Name: "date", Label: "Date", Type: model.TypeDate, UI: model.UiDate, Required: true},
			{ID: "tpl-expense-time", Name: "time", Label: "Time", Type: model.TypeTime, UI: model.UiTime},
			{ID: "tpl-expense-reimbursable", Name: "reimbursable", Label: "Reimbursable", Type: model.TypeBoolean, UI: model.UiSwitch},
		},
	},
	Clear,
}

// ByID looks a template up in the catalog.
func ByID(id string) (Template, bool) {
	for _, tpl := range Catalog {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}
