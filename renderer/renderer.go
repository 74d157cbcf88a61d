package renderer

import "github.com/engineer-dilnawaz/dynamic-forms/model"

// WidgetKind is the widget actually bound, after fallback rules are applied.
// It is always one of the concrete widgets below: radio resolves to select,
// unrecognized ui tags resolve to text.
type WidgetKind string

const (
	KindText     WidgetKind = "text"
	KindTextarea WidgetKind = "textarea"
	KindNumber   WidgetKind = "number"
	KindSwitch   WidgetKind = "switch"
	KindDate     WidgetKind = "date"
	KindTime     WidgetKind = "time"
	KindSelect   WidgetKind = "select"
)

// Widget is one input control bound to a field: the view model the frontend
// renders verbatim. Value is coerced to the widget's value domain.
type Widget struct {
	Kind     WidgetKind          `json:"kind"`
	Name     string              `json:"name"`
	Label    string              `json:"label"`
	Value    any                 `json:"value"`
	Options  []model.FieldOption `json:"options,omitempty"`
	Required bool                `json:"required,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Render maps one field schema to its bound widget. Dispatch is purely on the
// field's ui tag; adding a widget type is one new case here.
func Render(field model.FieldSchema, value any, errMsg string) Widget {
	w := Widget{
		Name:     field.Name,
		Label:    field.Label,
		Required: field.Required,
		Error:    errMsg,
	}

	switch field.UI {
	case model.UiTextarea:
		w.Kind = KindTextarea
		w.Value = stringValue(value)
	case model.UiNumber:
		w.Kind = KindNumber
		w.Value = numberValue(value)
	case model.UiSwitch:
		w.Kind = KindSwitch
		w.Value = boolValue(value)
	case model.UiDate:
		w.Kind = KindDate
		w.Value = stringValue(value)
	case model.UiTime:
		w.Kind = KindTime
		w.Value = stringValue(value)
	case model.UiSelect, model.UiRadio:
		// no distinct radio group, radio reuses the select widget
		w.Kind = KindSelect
		w.Value = stringValue(value)
		w.Options = field.Options
	default:
		// includes model.UiText and any unrecognized tag
		w.Kind = KindText
		w.Value = stringValue(value)
	}
	return w
}

// RenderForm binds one widget per field, in schema order.
func RenderForm(schema model.CategorySchema, values map[string]any, errs map[string]string) []Widget {
	widgets := make([]Widget, len(schema.Fields))
	for i, f := range schema.Fields {
		widgets[i] = Render(f, values[f.Name], errs[f.Name])
	}
	return widgets
}

// RequiredMessage is surfaced next to a required field left empty.
const RequiredMessage = "this field is required"

// RequiredError evaluates the presence rule for one field at submit time.
// Only nil and the empty string count as missing: a false boolean and a zero
// number are valid values.
func RequiredError(field model.FieldSchema, value any) string {
	if !field.Required {
		return ""
	}
	switch v := value.(type) {
	case nil:
		return RequiredMessage
	case string:
		if v == "" {
			return RequiredMessage
		}
	}
	return ""
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

// numberValue keeps numeric values as-is and binds everything else to the
// empty string, the "no value yet" state of a numeric input.
func numberValue(v any) any {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return v
	}
	return ""
}
