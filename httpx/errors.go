package httpx

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/engineer-dilnawaz/dynamic-forms/log"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log a debug message, and send an HTTP response with status 404 and default text
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	w.WriteHeader(http.StatusNotFound)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// ValidationErrors sends a 422 carrying a field-to-message map. These are
// recoverable input errors surfaced inline by the frontend, logged at debug
// level only.
func ValidationErrors(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	log.Debugf("validation: %v", errs)
	w.WriteHeader(http.StatusUnprocessableEntity)
	render.JSON(w, r, map[string]any{"errors": errs})
}
