package forms

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
	"github.com/engineer-dilnawaz/dynamic-forms/renderer"
)

// sink records entries without touching a database.
type sink struct {
	entries []model.FormEntry
}

func (s *sink) Add(entry model.FormEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func brandSchema() model.CategorySchema {
	return model.CategorySchema{
		ID:   "s1",
		Name: "Vehicles",
		Fields: []model.FieldSchema{
			{ID: "f1", Name: "brand", Type: model.TypeString, UI: model.UiText, Required: true},
		},
	}
}

func TestRunner_SubmitRoundTrip(t *testing.T) {
	entries := &sink{}
	run := New(brandSchema())
	run.Set("brand", "Toyota")

	entry, errs, err := run.Submit(entries, testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none", errs)
	}

	if len(entries.entries) != 1 {
		t.Fatalf("stored entries = %d, want 1", len(entries.entries))
	}
	if entry.ID == "" {
		t.Error("entry id not generated")
	}
	if entry.CategoryID != "s1" {
		t.Errorf("categoryId = %q, want s1", entry.CategoryID)
	}
	if !entry.SubmittedAt.Equal(testNow) {
		t.Errorf("submittedAt = %v, want %v", entry.SubmittedAt, testNow)
	}
	if diff := cmp.Diff(map[string]any{"brand": "Toyota"}, entry.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}

	// a second submission gets its own id
	second, _, err := run.Submit(entries, testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if second.ID == entry.ID {
		t.Error("ids not distinct across submissions")
	}
}

func TestRunner_RequiredBlocksSubmit(t *testing.T) {
	entries := &sink{}
	run := New(brandSchema())

	entry, errs, err := run.Submit(entries, testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if errs["brand"] != renderer.RequiredMessage {
		t.Errorf("errs[brand] = %q, want %q", errs["brand"], renderer.RequiredMessage)
	}
	if entry.ID != "" {
		t.Error("entry produced despite validation failure")
	}
	if len(entries.entries) != 0 {
		t.Errorf("stored entries = %d, want 0 (all-or-nothing)", len(entries.entries))
	}

	// the failure shows up on the re-rendered widget
	widgets := run.Widgets()
	if widgets[0].Error != renderer.RequiredMessage {
		t.Errorf("widget error = %q, want %q", widgets[0].Error, renderer.RequiredMessage)
	}
}

func TestRunner_FalseBooleanSatisfiesRequired(t *testing.T) {
	schema := model.CategorySchema{
		ID: "s1",
		Fields: []model.FieldSchema{
			{ID: "f1", Name: "registered", Type: model.TypeBoolean, UI: model.UiSwitch, Required: true},
		},
	}

	entries := &sink{}
	run := New(schema)
	run.Set("registered", false)

	entry, errs, err := run.Submit(entries, testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none (false is a value)", errs)
	}
	if entry.Data["registered"] != false {
		t.Errorf("data[registered] = %v, want false", entry.Data["registered"])
	}
}

func TestRunner_DataKeysMatchSchemaFields(t *testing.T) {
	schema := model.CategorySchema{
		ID: "s1",
		Fields: []model.FieldSchema{
			{ID: "f1", Name: "brand", Type: model.TypeString, UI: model.UiText},
			{ID: "f2", Name: "registered", Type: model.TypeBoolean, UI: model.UiSwitch},
		},
	}

	entries := &sink{}
	run := New(schema)
	run.SetAll(map[string]any{
		"brand":    "Toyota",
		"stray":    "dropped", // not a schema field
		"ignored2": 42,
	})

	entry, _, err := run.Submit(entries, testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// exactly one key per schema field; the unset switch binds to false
	want := map[string]any{"brand": "Toyota", "registered": false}
	if diff := cmp.Diff(want, entry.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}
