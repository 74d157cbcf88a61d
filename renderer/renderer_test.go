package renderer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
)

func TestRender_Dispatch(t *testing.T) {
	options := []model.FieldOption{
		{Label: "Red", Value: "Red"},
		{Label: "Blue", Value: "Blue"},
	}

	tests := []struct {
		name  string
		field model.FieldSchema
		value any
		want  Widget
	}{
		{
			name:  "text",
			field: model.FieldSchema{Name: "brand", Label: "Brand", UI: model.UiText},
			value: "Toyota",
			want:  Widget{Kind: KindText, Name: "brand", Label: "Brand", Value: "Toyota"},
		},
		{
			name:  "textarea",
			field: model.FieldSchema{Name: "notes", Label: "Notes", UI: model.UiTextarea},
			value: "some text",
			want:  Widget{Kind: KindTextarea, Name: "notes", Label: "Notes", Value: "some text"},
		},
		{
			name:  "number",
			field: model.FieldSchema{Name: "year", Label: "Year", UI: model.UiNumber},
			value: float64(2020),
			want:  Widget{Kind: KindNumber, Name: "year", Label: "Year", Value: float64(2020)},
		},
		{
			name:  "number unset binds empty",
			field: model.FieldSchema{Name: "year", Label: "Year", UI: model.UiNumber},
			value: nil,
			want:  Widget{Kind: KindNumber, Name: "year", Label: "Year", Value: ""},
		},
		{
			name:  "switch defaults false",
			field: model.FieldSchema{Name: "registered", Label: "Registered", UI: model.UiSwitch},
			value: nil,
			want:  Widget{Kind: KindSwitch, Name: "registered", Label: "Registered", Value: false},
		},
		{
			name:  "date",
			field: model.FieldSchema{Name: "bought", Label: "Bought", UI: model.UiDate},
			value: "2026-03-14",
			want:  Widget{Kind: KindDate, Name: "bought", Label: "Bought", Value: "2026-03-14"},
		},
		{
			name:  "time",
			field: model.FieldSchema{Name: "at", Label: "At", UI: model.UiTime},
			value: "09:30",
			want:  Widget{Kind: KindTime, Name: "at", Label: "At", Value: "09:30"},
		},
		{
			name:  "select carries options",
			field: model.FieldSchema{Name: "color", Label: "Color", UI: model.UiSelect, Options: options},
			value: "Red",
			want:  Widget{Kind: KindSelect, Name: "color", Label: "Color", Value: "Red", Options: options},
		},
		{
			name:  "radio falls back to select",
			field: model.FieldSchema{Name: "color", Label: "Color", UI: model.UiRadio, Options: options},
			value: "Blue",
			want:  Widget{Kind: KindSelect, Name: "color", Label: "Color", Value: "Blue", Options: options},
		},
		{
			name:  "unrecognized ui falls back to text",
			field: model.FieldSchema{Name: "x", Label: "X", UI: model.UiType("slider")},
			value: "5",
			want:  Widget{Kind: KindText, Name: "x", Label: "X", Value: "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.field, tt.value, "")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderForm_OrderAndErrors(t *testing.T) {
	schema := model.CategorySchema{
		ID: "s1",
		Fields: []model.FieldSchema{
			{Name: "brand", Label: "Brand", UI: model.UiText, Required: true},
			{Name: "year", Label: "Year", UI: model.UiNumber},
		},
	}

	widgets := RenderForm(schema,
		map[string]any{"year": float64(1999)},
		map[string]string{"brand": RequiredMessage},
	)
	if len(widgets) != 2 {
		t.Fatalf("widgets = %d, want 2", len(widgets))
	}
	if widgets[0].Name != "brand" || widgets[1].Name != "year" {
		t.Errorf("widget order = %q, %q; want brand, year", widgets[0].Name, widgets[1].Name)
	}
	if widgets[0].Error != RequiredMessage {
		t.Errorf("brand error = %q, want %q", widgets[0].Error, RequiredMessage)
	}
	if widgets[1].Value != float64(1999) {
		t.Errorf("year value = %v, want 1999", widgets[1].Value)
	}
}

func TestRequiredError(t *testing.T) {
	required := model.FieldSchema{Name: "x", Required: true}
	optional := model.FieldSchema{Name: "x"}

	tests := []struct {
		name  string
		field model.FieldSchema
		value any
		fails bool
	}{
		{"nil fails", required, nil, true},
		{"empty string fails", required, "", true},
		{"string passes", required, "Toyota", false},
		{"false boolean passes", required, false, false},
		{"zero number passes", required, float64(0), false},
		{"optional nil passes", optional, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := RequiredError(tt.field, tt.value)
			if tt.fails && msg != RequiredMessage {
				t.Errorf("msg = %q, want %q", msg, RequiredMessage)
			}
			if !tt.fails && msg != "" {
				t.Errorf("msg = %q, want empty", msg)
			}
		})
	}
}
