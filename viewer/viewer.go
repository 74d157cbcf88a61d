package viewer

import (
	"fmt"
	"sort"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
)

// SchemaLookup resolves a category id to its schema.
type SchemaLookup interface {
	Get(id string) (model.CategorySchema, bool)
}

// Filter narrows the entries listing. Zero values mean "all".
type Filter struct {
	CategoryID string
	Day        string // calendar day, YYYY-MM-DD
}

// Row is one listing line: the entry plus its resolved category name.
type Row struct {
	Entry        model.FormEntry `json:"entry"`
	CategoryName string          `json:"categoryName"`
}

// UnknownCategory labels entries whose schema no longer exists.
const UnknownCategory = "Unknown"

// List applies both filters independently and sorts the result newest first.
func List(entries []model.FormEntry, schemas SchemaLookup, f Filter) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		if f.CategoryID != "" && e.CategoryID != f.CategoryID {
			continue
		}
		if f.Day != "" && e.SubmittedAt.Format("2006-01-02") != f.Day {
			continue
		}
		rows = append(rows, Row{Entry: e, CategoryName: CategoryName(schemas, e.CategoryID)})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Entry.SubmittedAt.After(rows[j].Entry.SubmittedAt)
	})
	return rows
}

// CategoryName resolves a schema name, degrading to UnknownCategory when the
// reference dangles.
func CategoryName(schemas SchemaLookup, id string) string {
	if s, ok := schemas.Get(id); ok {
		return s.Name
	}
	return UnknownCategory
}

// DetailRow is one key/value line of an entry's data.
type DetailRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Detail renders an entry's data as display rows: booleans as Yes/No, every
// other value stringified. Known schema fields come first in schema order;
// leftover keys (e.g. from a schema edited after submission) follow sorted.
func Detail(entry model.FormEntry, schema model.CategorySchema) []DetailRow {
	rows := make([]DetailRow, 0, len(entry.Data))
	seen := map[string]bool{}
	for _, f := range schema.Fields {
		if v, ok := entry.Data[f.Name]; ok {
			rows = append(rows, DetailRow{Key: f.Name, Value: formatValue(v)})
			seen[f.Name] = true
		}
	}

	var rest []string
	for key := range entry.Data {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		rows = append(rows, DetailRow{Key: key, Value: formatValue(entry.Data[key])})
	}
	return rows
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
