package game

import (
	"context"
	"errors"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

var (
	// ErrHubRecord marks operations that target the hub post instead of a game.
	ErrHubRecord = errors.New("operation not valid on the hub post")
	// ErrNotCreator rejects reveal attempts from anyone but the game's creator.
	ErrNotCreator = errors.New("only the creator can reveal the shape")
	// ErrNotRevealed gates data that is only exposed after reveal.
	ErrNotRevealed = errors.New("game is not revealed yet")
)

// RevealResult is the terminal-state payload: the full ledger plus stats.
type RevealResult struct {
	Target  domain.TargetShape   `json:"target"`
	Guesses []domain.GuessRecord `json:"guesses"`
	Stats   domain.GameStats     `json:"stats"`
}

// Revealer drives the one-way active -> revealed transition.
type Revealer struct {
	games   *repository.GameRepository
	guesses *repository.GuessRepository
	stats   *Stats
}

func NewRevealer(games *repository.GameRepository, guesses *repository.GuessRepository, stats *Stats) *Revealer {
	return &Revealer{games: games, guesses: guesses, stats: stats}
}

// Reveal closes guessing and exposes the full ledger. Only the creator may
// trigger it; revealing an already-revealed game is a no-op that returns
// the same data. The hub post cannot be revealed.
func (r *Revealer) Reveal(ctx context.Context, gameID, username string) (*RevealResult, error) {
	g, err := r.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.IsHub {
		return nil, ErrHubRecord
	}
	if !g.Revealed && g.CreatedBy != username {
		return nil, ErrNotCreator
	}

	if !g.Revealed {
		if err := r.games.SetRevealed(ctx, gameID); err != nil {
			return nil, err
		}
		logger.Info("game revealed", "game", gameID, "by", username)
	}

	guesses, err := r.guesses.GetGuesses(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return &RevealResult{
		Target:  g.Target,
		Guesses: guesses,
		Stats:   r.stats.Game(ctx, gameID),
	}, nil
}
