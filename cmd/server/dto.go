package main

import (
	"fmt"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/lockbox-server/internal/lockbox"
	"github.com/vancomm/lockbox-server/internal/session"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// maxDimension caps box sizes on the request path: elimination is
// cubic in height*width and must not become a DoS lever.
const maxDimension = 64

type NewBoxParams struct {
	Height int `schema:"height,required"`
	Width  int `schema:"width,required"`
}

func (p NewBoxParams) Validate() error {
	if p.Height < 1 || p.Width < 1 {
		return fmt.Errorf("box dimensions must be positive")
	}
	if p.Height > maxDimension || p.Width > maxDimension {
		return fmt.Errorf("box dimensions must not exceed %d", maxDimension)
	}
	return nil
}

type ToggleParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

type BoxDTO struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Locked    bool      `json:"locked"`
	State     [][]bool  `json:"state"`
}

func NewBoxDTO(s *session.Session, box *lockbox.Box) BoxDTO {
	return BoxDTO{
		SessionID: s.ID,
		StartedAt: s.StartedAt,
		Height:    box.Height(),
		Width:     box.Width(),
		Locked:    box.IsLocked(),
		State:     box.State(),
	}
}

type SolveDTO struct {
	BoxDTO
	Toggles []lockbox.Cell `json:"toggles"`
}
