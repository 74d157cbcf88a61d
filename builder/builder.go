package builder

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
	"github.com/engineer-dilnawaz/dynamic-forms/templates"
)

// FieldRow is one editable row of a draft. It mirrors model.FieldSchema
// except that options are kept as a comma-separated editing string.
type FieldRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Label         string          `json:"label"`
	Type          model.FieldType `json:"type"`
	UI            model.UiType    `json:"ui"`
	Required      bool            `json:"required"`
	OptionsString string          `json:"optionsString,omitempty"`
}

// Draft is an in-progress, uncommitted category schema. Nothing touches the
// schema store until the draft validates and is built.
type Draft struct {
	ID     string     `json:"id,omitempty"`
	Name   string     `json:"name"`
	Fields []FieldRow `json:"fields"`
}

func NewDraft() *Draft {
	return &Draft{}
}

// DraftFrom loads an existing schema into the editor.
func DraftFrom(s model.CategorySchema) *Draft {
	d := &Draft{ID: s.ID, Name: s.Name, Fields: make([]FieldRow, len(s.Fields))}
	for i, f := range s.Fields {
		d.Fields[i] = FieldRow{
			ID:            f.ID,
			Name:          f.Name,
			Label:         f.Label,
			Type:          f.Type,
			UI:            f.UI,
			Required:      f.Required,
			OptionsString: joinOptions(f.Options),
		}
	}
	return d
}

// AddField appends a fresh row with safe defaults.
func (d *Draft) AddField() *FieldRow {
	d.Fields = append(d.Fields, FieldRow{
		ID:   model.NewID(),
		Type: model.TypeString,
		UI:   model.UiText,
	})
	return &d.Fields[len(d.Fields)-1]
}

// RemoveField deletes the row at index, preserving the order of the rest.
func (d *Draft) RemoveField(i int) {
	if i < 0 || i >= len(d.Fields) {
		return
	}
	d.Fields = append(d.Fields[:i], d.Fields[i+1:]...)
}

// SetFieldType changes a row's type and force-resets its widget to the type's
// default. The reset fires even when the same type is reselected, discarding
// any manual widget override.
func (d *Draft) SetFieldType(i int, t model.FieldType) {
	if i < 0 || i >= len(d.Fields) {
		return
	}
	d.Fields[i].Type = t
	d.Fields[i].UI = model.DefaultWidget(t)
}

// SetFieldUI overrides a row's widget when it is compatible with the row's
// type; incompatible choices are ignored.
func (d *Draft) SetFieldUI(i int, ui model.UiType) {
	if i < 0 || i >= len(d.Fields) {
		return
	}
	for _, allowed := range model.WidgetsFor(d.Fields[i].Type) {
		if ui == allowed {
			d.Fields[i].UI = ui
			return
		}
	}
}

// LoadTemplate replaces the draft with a canned bundle. In edit mode only the
// fields are replaced, so an existing schema keeps its name. The clear
// template resets to an empty draft.
func (d *Draft) LoadTemplate(tpl templates.Template, editMode bool) {
	loaded := DraftFrom(model.CategorySchema{Name: tpl.Name, Fields: tpl.Fields})
	loaded.ID = d.ID
	if editMode {
		loaded.Name = d.Name
	}
	*d = *loaded
}

// Validate checks the draft before committing. The returned map is keyed by
// the offending input ("name" for the schema name, "fields" for the
// field-count floor); an empty map means the draft can be built. Edit mode
// skips the duplicate-name check, since the record being edited already
// carries its own name.
func (d *Draft) Validate(existing []model.CategorySchema, editMode bool) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs["name"] = "category name is required"
	} else if !editMode {
		for _, s := range existing {
			if strings.EqualFold(s.Name, name) {
				errs["name"] = "a category with this name already exists"
				break
			}
		}
	}

	if len(d.Fields) == 0 {
		errs["fields"] = "add at least one field"
	}
	return errs
}

var reNoIdent = regexp.MustCompile(`\W+`)

// Build materializes the draft into a committable schema: blank field ids get
// fresh ones, blank names are derived from the label, options strings expand
// into stored options.
func (d *Draft) Build(now time.Time) model.CategorySchema {
	names := make([]string, len(d.Fields))
	fields := make([]model.FieldSchema, len(d.Fields))
	for i, row := range d.Fields {
		id := row.ID
		if id == "" {
			id = model.NewID()
		}

		name := strings.TrimSpace(row.Name)
		if name == "" {
			name = deriveName(row.Label, names[:i])
		}
		names[i] = name

		fields[i] = model.FieldSchema{
			ID:       id,
			Name:     name,
			Label:    row.Label,
			Type:     row.Type,
			UI:       row.UI,
			Required: row.Required,
			Options:  expandOptions(row.OptionsString),
		}
	}

	id := d.ID
	if id == "" {
		id = model.NewID()
	}
	return model.CategorySchema{
		ID:        id,
		Name:      strings.TrimSpace(d.Name),
		Fields:    fields,
		CreatedAt: now,
	}
}

// deriveName slugs a label into a property name, suffixing duplicates.
func deriveName(label string, taken []string) string {
	name := strings.ToLower(label)
	name = reNoIdent.ReplaceAllLiteralString(name, " ")
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "field"
	}

	n := 0
	for _, prev := range taken {
		if prev == name {
			n++
		}
	}
	if n > 0 {
		name = fmt.Sprintf("%s__%d", name, n)
	}
	return name
}
