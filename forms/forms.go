package forms

import (
	"time"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
	"github.com/engineer-dilnawaz/dynamic-forms/renderer"
)

// EntrySink receives the entry produced by a successful submit.
type EntrySink interface {
	Add(entry model.FormEntry) error
}

// Runner drives one fill-out session of a schema. It owns the value bag,
// keyed by field name, and is the only thing that mutates it.
type Runner struct {
	schema model.CategorySchema
	values map[string]any
	errors map[string]string
}

func New(schema model.CategorySchema) *Runner {
	return &Runner{
		schema: schema,
		values: map[string]any{},
		errors: map[string]string{},
	}
}

// Set records the current value of one field.
func (r *Runner) Set(name string, value any) {
	r.values[name] = value
}

// SetAll replaces the value bag, e.g. with a decoded submit request body.
func (r *Runner) SetAll(values map[string]any) {
	r.values = map[string]any{}
	for name, value := range values {
		r.values[name] = value
	}
}

// Widgets binds one widget per schema field with current values and
// validation errors, in render order.
func (r *Runner) Widgets() []renderer.Widget {
	return renderer.RenderForm(r.schema, r.values, r.errors)
}

// Validate runs every field's required rule and keeps the result for the next
// Widgets call. An empty map means the form can be submitted.
func (r *Runner) Validate() map[string]string {
	errs := map[string]string{}
	for _, f := range r.schema.Fields {
		if msg := renderer.RequiredError(f, r.values[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}
	r.errors = errs
	return errs
}

// Submit validates and, when clean, appends a new entry with a fresh id.
// All-or-nothing: a single failing field aborts with per-field errors and
// writes no entry. The entry's data holds exactly one value per schema field,
// coerced to the field's widget domain.
func (r *Runner) Submit(entries EntrySink, now time.Time) (model.FormEntry, map[string]string, error) {
	if errs := r.Validate(); len(errs) > 0 {
		return model.FormEntry{}, errs, nil
	}

	data := make(map[string]any, len(r.schema.Fields))
	for _, f := range r.schema.Fields {
		data[f.Name] = renderer.Render(f, r.values[f.Name], "").Value
	}

	entry := model.FormEntry{
		ID:          model.NewID(),
		CategoryID:  r.schema.ID,
		Data:        data,
		SubmittedAt: now,
	}
	if err := entries.Add(entry); err != nil {
		return model.FormEntry{}, nil, err
	}
	return entry, nil, nil
}
