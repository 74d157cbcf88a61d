package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// FieldType is the semantic data type of a field's value.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeDate    FieldType = "date"
	TypeTime    FieldType = "time"
)

// UiType names the input widget used to collect a field's value.
type UiType string

const (
	UiText     UiType = "text"
	UiTextarea UiType = "textarea"
	UiNumber   UiType = "number"
	UiSwitch   UiType = "switch"
	UiDate     UiType = "date"
	UiTime     UiType = "time"
	UiSelect   UiType = "select"
	UiRadio    UiType = "radio"
)

// FieldOption is one selectable choice of a select/radio field. Value is the
// stored datum, Label the display text.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FieldSchema struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Type     FieldType     `json:"type"`
	UI       UiType        `json:"ui"`
	Options  []FieldOption `json:"options,omitempty"`
	Required bool          `json:"required,omitempty"`
}

// CategorySchema is a named, ordered list of field definitions describing one
// form's shape. Field order is render order.
type CategorySchema struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Fields    []FieldSchema `json:"fields"`
	CreatedAt time.Time     `json:"createdAt"`
}

// FormEntry is one submitted instance of a form. Data is keyed by field name;
// CategoryID is a weak reference and may dangle after a schema is deleted.
type FormEntry struct {
	ID          string         `json:"id"`
	CategoryID  string         `json:"categoryId"`
	Data        map[string]any `json:"data"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// DefaultWidget maps a field type to the widget it resets to when the type is
// (re)selected in the builder. The result never depends on a prior widget
// choice; unknown types fall back to a plain text input.
func DefaultWidget(t FieldType) UiType {
	switch t {
	case TypeNumber:
		return UiNumber
	case TypeBoolean:
		return UiSwitch
	case TypeDate:
		return UiDate
	case TypeTime:
		return UiTime
	default:
		return UiText
	}
}

// WidgetsFor lists the widgets compatible with a field type. Only string
// fields may override their default.
func WidgetsFor(t FieldType) []UiType {
	if t == TypeString {
		return []UiType{UiText, UiTextarea, UiSelect}
	}
	return []UiType{DefaultWidget(t)}
}

// NewID generates a fresh identifier for schemas, fields and entries.
func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}
