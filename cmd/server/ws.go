package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/lockbox-server/internal/lockbox"
	"github.com/vancomm/lockbox-server/internal/session"
)

type wsCommand string

const (
	wsState  wsCommand = "g"
	wsToggle wsCommand = "t"
	wsSolve  wsCommand = "s"
)

func parseRowCol(args []string) (row int, col int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want 2 arguments, got %d", len(args))
	}
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("first argument must be an int")
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("second argument must be an int")
	}
	return row, col, nil
}

// execute runs one command line against the session's box and returns
// the reply payload. Command errors are reported to the client, they
// do not end the connection.
func (app *application) execute(s *session.Session, line string) any {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return map[string]string{"error": "empty command"}
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]

	var reply any
	err := s.Do(func(box *lockbox.Box) error {
		switch cmd {
		case wsState:
			reply = NewBoxDTO(s, box)
			return nil
		case wsToggle:
			row, col, err := parseRowCol(args)
			if err != nil {
				return err
			}
			if err := box.Toggle(row, col); err != nil {
				return err
			}
			reply = NewBoxDTO(s, box)
			return nil
		case wsSolve:
			toggles, err := lockbox.Solution(box)
			if err != nil {
				return err
			}
			for _, cell := range toggles {
				if err := box.Toggle(cell.Row, cell.Col); err != nil {
					return err
				}
			}
			reply = SolveDTO{BoxDTO: NewBoxDTO(s, box), Toggles: toggles}
			return nil
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}
	})
	if err != nil {
		return map[string]string{"error": err.Error()}
	}
	return reply
}

func (app *application) wsConnect(w http.ResponseWriter, r *http.Request) {
	s := app.fetchSession(w, r)
	if s == nil {
		return
	}
	if !app.requireOwner(w, r, s) {
		return
	}

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer conn.Close()

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			reply := app.execute(s, strings.TrimSpace(line))
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}
}
