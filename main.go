package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/engineer-dilnawaz/dynamic-forms/app"
	"github.com/engineer-dilnawaz/dynamic-forms/config"
	"github.com/engineer-dilnawaz/dynamic-forms/database"
	"github.com/engineer-dilnawaz/dynamic-forms/httpx"
	"github.com/engineer-dilnawaz/dynamic-forms/log"
	"github.com/engineer-dilnawaz/dynamic-forms/routes"
	"github.com/engineer-dilnawaz/dynamic-forms/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	schemas, err := store.OpenSchemas(db)
	if err != nil {
		log.Fatal("main.store.schemas:", err)
	}
	entries, err := store.OpenEntries(db)
	if err != nil {
		log.Fatal("main.store.entries:", err)
	}

	app := app.App{
		Schemas:      schemas,
		Entries:      entries,
		BearerServer: httpx.NewBearerServer(db, cfg),
		Config:       cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
