package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/engineer-dilnawaz/dynamic-forms/app"
	"github.com/engineer-dilnawaz/dynamic-forms/builder"
	"github.com/engineer-dilnawaz/dynamic-forms/httpx"
	"github.com/engineer-dilnawaz/dynamic-forms/log"
	"github.com/engineer-dilnawaz/dynamic-forms/store"
	"github.com/engineer-dilnawaz/dynamic-forms/templates"
)

func CreateSchema(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := builder.Draft{}
		err := render.DecodeJSON(r.Body, &draft)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		draft.ID = "" // create mode always mints a fresh id

		if errs := draft.Validate(app.Schemas.All(), false); len(errs) > 0 {
			httpx.ValidationErrors(w, r, errs)
			return
		}

		schema := draft.Build(time.Now())
		if err := app.Schemas.Add(schema); err != nil {
			httpx.LogInternalError(w, "store.add_schema", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, schema)
	}
}

func ListSchemas(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"schemas": app.Schemas.All(),
		})
	}
}

func GetSchemaByID(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemaId := chi.URLParam(r, "id")

		schema, ok := app.Schemas.Get(schemaId)
		if !ok {
			httpx.LogNotFound(w, "get_schema", schemaId)
			return
		}

		// hand the editor a draft, options re-joined for tag editing
		render.JSON(w, r, builder.DraftFrom(schema))
	}
}

func UpdateSchema(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemaId := chi.URLParam(r, "id")

		if _, ok := app.Schemas.Get(schemaId); !ok {
			httpx.LogNotFound(w, "update_schema", schemaId)
			return
		}

		draft := builder.Draft{}
		err := render.DecodeJSON(r.Body, &draft)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		draft.ID = schemaId

		// edit mode: the record keeps its own name, so no duplicate check
		if errs := draft.Validate(app.Schemas.All(), true); len(errs) > 0 {
			httpx.ValidationErrors(w, r, errs)
			return
		}

		schema := draft.Build(time.Now())
		found, err := app.Schemas.Update(schemaId, store.SchemaPatch{
			Name:   &schema.Name,
			Fields: &schema.Fields,
		})
		if err != nil {
			httpx.LogInternalError(w, "store.update_schema", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "update_schema", schemaId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteSchema(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemaId := chi.URLParam(r, "id")

		// no cascade: entries referencing the schema stay and dangle
		found, err := app.Schemas.Delete(schemaId)
		if err != nil {
			httpx.LogInternalError(w, "store.delete_schema", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "delete_schema", schemaId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListTemplates(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"templates": templates.Catalog,
		})
	}
}
