package ws

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/game"
	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/service"
)

// eventSink is where a session's outbound events go. The live implementation
// is the websocket client's send queue.
type eventSink interface {
	SendEvent(Event)
	// Fail delivers a final error event and tears the connection down.
	Fail(message string)
}

// Session handles the webview command stream for one connection: one
// identity, one post, commands processed in arrival order to completion.
type Session struct {
	svc      *service.GameService
	username string
	gameID   string
	sink     eventSink
}

func NewSession(svc *service.GameService, username, gameID string, sink eventSink) *Session {
	return &Session{svc: svc, username: username, gameID: gameID, sink: sink}
}

// HandleMessage dispatches one inbound frame. An unrecognized type is a
// contract mismatch between webview and server and kills the session;
// everything else degrades to toasts or error payloads.
func (s *Session) HandleMessage(ctx context.Context, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.sink.Fail("malformed message frame")
		return
	}

	switch env.Type {
	case MsgWebViewReady:
		s.handleWebViewReady(ctx)
	case MsgCreateGamePost:
		s.handleCreateGame(ctx, env.Payload)
	case MsgRecordGuess:
		s.handleGuess(ctx, env.Payload)
	case MsgRevealShape:
		s.handleReveal(ctx)
	case MsgRefreshPost:
		// navigation happens on the host side; nothing to send back
		logger.Debug("refresh requested", "game", s.gameID, "user", s.username)
	default:
		logger.Error("unknown message type", "type", env.Type, "user", s.username)
		s.sink.Fail("unknown message type: " + env.Type)
	}
}

func (s *Session) handleWebViewReady(ctx context.Context) {
	data, err := s.svc.InitialData(ctx, s.gameID, s.username)
	if err != nil {
		logger.Error("initial data failed", "game", s.gameID, "error", err)
		s.sink.SendEvent(Event{Type: MsgError, Payload: ErrorPayload{Message: "failed to load game"}})
		return
	}
	s.sink.SendEvent(Event{Type: MsgInitialData, Payload: data})
}

func (s *Session) handleCreateGame(ctx context.Context, raw json.RawMessage) {
	var req CreateGamePayload
	if err := json.Unmarshal(raw, &req); err != nil {
		s.sink.SendEvent(Event{Type: MsgToast, Payload: ToastPayload{Message: "invalid shape data"}})
		return
	}

	var canvas domain.CanvasConfig
	if req.Canvas != nil {
		canvas = *req.Canvas
	}

	g, err := s.svc.CreateGame(ctx, s.username, req.Target, canvas)
	if errors.Is(err, game.ErrInvalidShape) {
		s.sink.SendEvent(Event{Type: MsgToast, Payload: ToastPayload{Message: "that shape is not valid"}})
		return
	}
	if err != nil {
		logger.Error("create game failed", "user", s.username, "error", err)
		s.sink.SendEvent(Event{Type: MsgError, Payload: ErrorPayload{Message: "failed to create game"}})
		return
	}

	s.sink.SendEvent(Event{Type: MsgGameCreated, Payload: GameCreatedPayload{
		ID:      g.ID,
		ShortID: g.ShortID,
		Message: "game created, share code " + g.ShortID,
	}})
}

func (s *Session) handleGuess(ctx context.Context, raw json.RawMessage) {
	var req GuessPayload
	if err := json.Unmarshal(raw, &req); err != nil {
		s.sink.SendEvent(Event{Type: MsgToast, Payload: ToastPayload{Message: "invalid guess data"}})
		return
	}

	out, err := s.svc.RecordGuess(ctx, s.gameID, s.username, req.X, req.Y, req.SecondsTaken)
	if err != nil {
		logger.Error("record guess failed", "game", s.gameID, "user", s.username, "error", err)
		s.sink.SendEvent(Event{Type: MsgError, Payload: ErrorPayload{Message: "failed to record guess"}})
		return
	}

	s.sink.SendEvent(Event{Type: MsgGuessResponse, Payload: guessResponseFromOutcome(out)})
}

func (s *Session) handleReveal(ctx context.Context) {
	res, err := s.svc.Reveal(ctx, s.gameID, s.username)
	switch {
	case errors.Is(err, game.ErrHubRecord):
		s.sink.SendEvent(Event{Type: MsgToast, Payload: ToastPayload{Message: "nothing to reveal here"}})
		return
	case errors.Is(err, game.ErrNotCreator):
		s.sink.SendEvent(Event{Type: MsgToast, Payload: ToastPayload{Message: "only the creator can reveal the shape"}})
		return
	case err != nil:
		logger.Error("reveal failed", "game", s.gameID, "error", err)
		s.sink.SendEvent(Event{Type: MsgError, Payload: ErrorPayload{Message: "failed to reveal"}})
		return
	}

	heatmap, err := s.svc.Heatmap(ctx, s.gameID)
	if err != nil {
		logger.Error("heatmap failed", "game", s.gameID, "error", err)
	}

	s.sink.SendEvent(Event{Type: MsgRevealResults, Payload: RevealResultsPayload{
		Target:  res.Target,
		Guesses: res.Guesses,
		Stats:   res.Stats,
		Heatmap: heatmap,
	}})
}
