package viewer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
)

// lookup is an in-memory SchemaLookup.
type lookup map[string]model.CategorySchema

func (l lookup) Get(id string) (model.CategorySchema, bool) {
	s, ok := l[id]
	return s, ok
}

func entry(id, cat string, at time.Time) model.FormEntry {
	return model.FormEntry{ID: id, CategoryID: cat, Data: map[string]any{}, SubmittedAt: at}
}

func TestList_FilterAndSort(t *testing.T) {
	schemas := lookup{
		"a": {ID: "a", Name: "Vehicles"},
		"b": {ID: "b", Name: "Pets"},
	}
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	entries := []model.FormEntry{
		entry("e1", "a", base),
		entry("e2", "b", base.Add(time.Minute)),
		entry("e3", "a", base.Add(2*time.Minute)),
		entry("e4", "a", base.Add(-24*time.Hour)),
	}

	t.Run("by category, newest first", func(t *testing.T) {
		rows := List(entries, schemas, Filter{CategoryID: "a"})
		var ids []string
		for _, row := range rows {
			ids = append(ids, row.Entry.ID)
		}
		want := []string{"e3", "e1", "e4"}
		if diff := cmp.Diff(want, ids); diff != "" {
			t.Errorf("row order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("by day", func(t *testing.T) {
		rows := List(entries, schemas, Filter{Day: "2026-03-13"})
		if len(rows) != 1 || rows[0].Entry.ID != "e4" {
			t.Errorf("rows = %+v, want just e4", rows)
		}
	})

	t.Run("filters compose", func(t *testing.T) {
		rows := List(entries, schemas, Filter{CategoryID: "a", Day: "2026-03-14"})
		if len(rows) != 2 {
			t.Errorf("rows = %d, want 2", len(rows))
		}
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		rows := List(entries, schemas, Filter{})
		if len(rows) != 4 {
			t.Errorf("rows = %d, want 4", len(rows))
		}
	})
}

func TestList_DanglingCategoryDegrades(t *testing.T) {
	schemas := lookup{}
	rows := List([]model.FormEntry{entry("e1", "gone", time.Now())}, schemas, Filter{})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].CategoryName != UnknownCategory {
		t.Errorf("categoryName = %q, want %q", rows[0].CategoryName, UnknownCategory)
	}
}

func TestDetail(t *testing.T) {
	schema := model.CategorySchema{
		ID: "s1",
		Fields: []model.FieldSchema{
			{Name: "brand", UI: model.UiText},
			{Name: "registered", UI: model.UiSwitch},
			{Name: "year", UI: model.UiNumber},
		},
	}
	e := model.FormEntry{
		ID:         "e1",
		CategoryID: "s1",
		Data: map[string]any{
			"brand":      "Toyota",
			"registered": true,
			"year":       float64(2020),
			"orphan":     false, // left over from an older schema revision
		},
	}

	want := []DetailRow{
		{Key: "brand", Value: "Toyota"},
		{Key: "registered", Value: "Yes"},
		{Key: "year", Value: "2020"},
		{Key: "orphan", Value: "No"},
	}
	if diff := cmp.Diff(want, Detail(e, schema)); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
}

func TestDetail_UnknownSchemaSortsKeys(t *testing.T) {
	e := model.FormEntry{
		ID:   "e1",
		Data: map[string]any{"b": "2", "a": "1"},
	}

	want := []DetailRow{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}
	if diff := cmp.Diff(want, Detail(e, model.CategorySchema{})); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
}
