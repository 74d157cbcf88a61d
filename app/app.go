package app

import (
	"github.com/go-chi/oauth"

	"github.com/engineer-dilnawaz/dynamic-forms/config"
	"github.com/engineer-dilnawaz/dynamic-forms/store"
)

// App bundles the process-wide collaborators: the two persisted stores, the
// bearer server and parsed configuration. Constructed once in main and passed
// by value to every handler constructor; nothing reaches these through
// package globals.
type App struct {
	Schemas *store.SchemaStore
	Entries *store.EntryStore
	*oauth.BearerServer
	config.Config
}
