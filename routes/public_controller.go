package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/engineer-dilnawaz/dynamic-forms/app"
	"github.com/engineer-dilnawaz/dynamic-forms/forms"
	"github.com/engineer-dilnawaz/dynamic-forms/httpx"
	"github.com/engineer-dilnawaz/dynamic-forms/log"
	"github.com/engineer-dilnawaz/dynamic-forms/viewer"
)

// ListCategories feeds the user dashboard: every form available to fill.
func ListCategories(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"schemas": app.Schemas.All(),
		})
	}
}

// GetForm resolves a schema and returns it with one bound widget per field.
// An unknown id degrades to a placeholder response, never a crash.
func GetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemaId := chi.URLParam(r, "id")

		schema, ok := app.Schemas.Get(schemaId)
		if !ok {
			log.Debugf("get_form: not found (%v)", schemaId)
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, map[string]any{"error": "form not found"})
			return
		}

		run := forms.New(schema)
		render.JSON(w, r, map[string]any{
			"schema":  schema,
			"widgets": run.Widgets(),
		})
	}
}

// SubmitForm validates the posted value bag against the schema's required
// rules and appends a new entry. All-or-nothing: any failing field aborts
// with per-field errors and nothing is written.
func SubmitForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemaId := chi.URLParam(r, "id")

		schema, ok := app.Schemas.Get(schemaId)
		if !ok {
			log.Debugf("submit_form: not found (%v)", schemaId)
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, map[string]any{"error": "form not found"})
			return
		}

		var body struct {
			Data map[string]any `json:"data"`
		}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		run := forms.New(schema)
		run.SetAll(body.Data)

		entry, errs, err := run.Submit(app.Entries, time.Now())
		if err != nil {
			httpx.LogInternalError(w, "store.add_entry", err)
			return
		}
		if len(errs) > 0 {
			httpx.ValidationErrors(w, r, errs)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, entry)
	}
}

// ListEntries serves the entries viewer: category and day filters compose,
// result is newest first.
func ListEntries(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := viewer.Filter{
			CategoryID: r.URL.Query().Get("category"),
			Day:        r.URL.Query().Get("day"),
		}

		rows := viewer.List(app.Entries.All(), app.Schemas, filter)
		render.JSON(w, r, map[string]any{
			"entries": rows,
		})
	}
}

// GetEntryByID serves the detail view: data as key/value display rows.
func GetEntryByID(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryId := chi.URLParam(r, "id")

		entry, ok := app.Entries.Get(entryId)
		if !ok {
			httpx.LogNotFound(w, "get_entry", entryId)
			return
		}

		// a deleted schema leaves the entry readable, labeled Unknown
		schema, _ := app.Schemas.Get(entry.CategoryID)
		render.JSON(w, r, map[string]any{
			"entry":        entry,
			"categoryName": viewer.CategoryName(app.Schemas, entry.CategoryID),
			"rows":         viewer.Detail(entry, schema),
		})
	}
}

func DeleteEntry(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryId := chi.URLParam(r, "id")

		found, err := app.Entries.Delete(entryId)
		if err != nil {
			httpx.LogInternalError(w, "store.delete_entry", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "delete_entry", entryId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
