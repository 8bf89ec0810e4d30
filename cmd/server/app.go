package main

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/lockbox-server/internal/config"
	"github.com/vancomm/lockbox-server/internal/middleware"
	"github.com/vancomm/lockbox-server/internal/session"
)

type application struct {
	log      *logrus.Logger
	sessions *session.Store
	cookies  *config.Cookies
	ws       *config.WebSocket
	rnd      *rand.Rand
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/box", app.handleNewBox)
	mux.HandleFunc("GET /v1/box/{id}", app.handleFetchBox)
	mux.HandleFunc("POST /v1/box/{id}/toggle", app.handleToggle)
	mux.HandleFunc("POST /v1/box/{id}/solve", app.handleSolve)
	mux.HandleFunc("GET /v1/box/{id}/connect", app.wsConnect)
	return mux
}

func (app *application) badRequest(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	app.replyWith(w, map[string]string{"error": err.Error()})
}

func (app *application) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	app.replyWith(w, map[string]string{"error": "this box is not yours"})
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	app.replyWith(w, map[string]string{"error": "no such box"})
}

func (app *application) internalError(w http.ResponseWriter, msg string, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	app.replyWith(w, map[string]string{"error": "internal error"})
	app.log.WithError(err).Error(msg)
}

func (app *application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.log.WithError(err).Error("unable to marshal response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(payload); err != nil {
		app.log.WithError(err).Error("unable to send response")
	}
}

// fetchSession resolves the {id} path value; a nil return means the
// response has already been written.
func (app *application) fetchSession(w http.ResponseWriter, r *http.Request) *session.Session {
	s, err := app.sessions.Get(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		app.notFound(w)
		return nil
	}
	return s
}

func (app *application) requireOwner(w http.ResponseWriter, r *http.Request, s *session.Session) bool {
	ownerID, ok := middleware.OwnerID(r)
	if !ok || ownerID != s.OwnerID {
		app.unauthorized(w)
		return false
	}
	return true
}
