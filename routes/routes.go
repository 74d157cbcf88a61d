package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/engineer-dilnawaz/dynamic-forms/app"
	"github.com/engineer-dilnawaz/dynamic-forms/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Admin(app.TokenSecret)).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// user surface: dashboard, form fill, entries viewer
	api.Get("/schemas", ListCategories(app))
	api.Get("/forms/{id}", GetForm(app))
	api.Post("/forms/{id}/entries", SubmitForm(app))
	api.Get("/entries", ListEntries(app))
	api.Get("/entries/{id}", GetEntryByID(app))
	api.Delete("/entries/{id}", DeleteEntry(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		// CRUD schemas
		r.Post("/schemas", CreateSchema(app))
		r.Get("/schemas", ListSchemas(app))
		r.Get("/schemas/{id}", GetSchemaByID(app))
		r.Put("/schemas/{id}", UpdateSchema(app))
		r.Delete("/schemas/{id}", DeleteSchema(app))

		r.Get("/templates", ListTemplates(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
