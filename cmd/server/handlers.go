package main

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/lockbox-server/internal/config"
	"github.com/vancomm/lockbox-server/internal/lockbox"
	"github.com/vancomm/lockbox-server/internal/middleware"
)

func (app *application) handleNewBox(w http.ResponseWriter, r *http.Request) {
	var params NewBoxParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		app.badRequest(w, err)
		return
	}
	if err := params.Validate(); err != nil {
		app.badRequest(w, err)
		return
	}

	ownerID, ok := middleware.OwnerID(r)
	if !ok {
		ownerID = app.sessions.NewID()
	}
	if err := app.cookies.Refresh(w, config.NewOwnerClaims(ownerID)); err != nil {
		app.internalError(w, "unable to refresh owner cookies", err)
		return
	}

	box := lockbox.New(params.Height, params.Width, app.rnd)
	s := app.sessions.Create(ownerID, box)

	app.log.WithFields(logrus.Fields{
		"session": s.ID,
		"height":  params.Height,
		"width":   params.Width,
	}).Info("new box")

	app.replyWith(w, NewBoxDTO(s, box))
}

func (app *application) handleFetchBox(w http.ResponseWriter, r *http.Request) {
	s := app.fetchSession(w, r)
	if s == nil {
		return
	}

	var dto BoxDTO
	s.Do(func(box *lockbox.Box) error {
		dto = NewBoxDTO(s, box)
		return nil
	})
	app.replyWith(w, dto)
}

func (app *application) handleToggle(w http.ResponseWriter, r *http.Request) {
	s := app.fetchSession(w, r)
	if s == nil {
		return
	}
	if !app.requireOwner(w, r, s) {
		return
	}

	var params ToggleParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		app.badRequest(w, err)
		return
	}

	var dto BoxDTO
	err := s.Do(func(box *lockbox.Box) error {
		if err := box.Toggle(params.Row, params.Col); err != nil {
			return err
		}
		dto = NewBoxDTO(s, box)
		return nil
	})
	if errors.Is(err, lockbox.ErrOutOfRange) {
		app.badRequest(w, err)
		return
	}

	app.replyWith(w, dto)
}

func (app *application) handleSolve(w http.ResponseWriter, r *http.Request) {
	s := app.fetchSession(w, r)
	if s == nil {
		return
	}
	if !app.requireOwner(w, r, s) {
		return
	}

	var dto SolveDTO
	err := s.Do(func(box *lockbox.Box) error {
		toggles, err := lockbox.Solution(box)
		if err != nil {
			return err
		}
		for _, cell := range toggles {
			if err := box.Toggle(cell.Row, cell.Col); err != nil {
				return err
			}
		}
		dto = SolveDTO{BoxDTO: NewBoxDTO(s, box), Toggles: toggles}
		return nil
	})
	if err != nil {
		// rank deficiency and friends are bugs, not lock states
		app.internalError(w, "unable to solve box", err)
		return
	}

	app.log.WithFields(logrus.Fields{
		"session": s.ID,
		"toggles": len(dto.Toggles),
		"locked":  dto.Locked,
	}).Info("box solved")

	app.replyWith(w, dto)
}
