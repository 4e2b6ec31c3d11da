package ws

import (
	"encoding/json"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/game"
)

// Envelope is the inbound wire frame: a type discriminator plus a payload
// left raw until the type is known.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Event is the outbound wire frame.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// client → server

type CreateGamePayload struct {
	Target domain.TargetShape   `json:"target"`
	Canvas *domain.CanvasConfig `json:"canvas"`
}

type GuessPayload struct {
	X            int `json:"x"`
	Y            int `json:"y"`
	SecondsTaken int `json:"secondsTaken"`
}

// server → client

type GameCreatedPayload struct {
	ID      string `json:"id"`
	ShortID string `json:"shortId"`
	Message string `json:"message"`
}

// GuessResponsePayload is the one canonical guess result: every field is
// always present, nil where a path genuinely has no value. Rejected paths
// carry Success=false plus a message; accepted paths carry the verdict,
// the target and the full updated ledger.
type GuessResponsePayload struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	IsCorrect *bool                `json:"isCorrect"`
	Target    *domain.TargetShape  `json:"target"`
	Guesses   []domain.GuessRecord `json:"guesses"`
}

type RevealResultsPayload struct {
	Target  domain.TargetShape   `json:"target"`
	Guesses []domain.GuessRecord `json:"guesses"`
	Stats   domain.GameStats     `json:"stats"`
	Heatmap []domain.HeatmapCell `json:"heatmap"`
}

type ToastPayload struct {
	Message string `json:"message"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func guessResponseFromOutcome(out *game.GuessOutcome) GuessResponsePayload {
	if !out.Recorded {
		msg := "you cannot guess on this post"
		if out.Rejected == game.RejectAlreadyGuessed {
			msg = "you already guessed on this game"
		}
		return GuessResponsePayload{Success: false, Message: msg}
	}

	correct := out.IsCorrect
	msg := "not quite, the shape was elsewhere"
	if correct {
		msg = "you found the shape!"
	}
	return GuessResponsePayload{
		Success:   true,
		Message:   msg,
		IsCorrect: &correct,
		Target:    out.Target,
		Guesses:   out.Ledger,
	}
}
