package game

import (
	"context"
	"sort"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

// HeatmapCellSize is the bucket edge in canvas pixels.
const HeatmapCellSize = 20

// Heatmap buckets every guess for a revealed game into a fixed grid so the
// renderer can draw guess density over the canvas. Guessing must be closed
// first: exposing the distribution while a game is active would hand later
// players a free triangulation aid.
func Heatmap(ctx context.Context, games *repository.GameRepository, guesses *repository.GuessRepository, gameID string) ([]domain.HeatmapCell, error) {
	revealed, err := games.IsRevealed(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !revealed {
		return nil, ErrNotRevealed
	}

	ledger, err := guesses.GetGuesses(ctx, gameID)
	if err != nil {
		return nil, err
	}

	type cellKey struct{ x, y int }
	counts := make(map[cellKey]int)
	for _, g := range ledger {
		k := cellKey{
			x: g.X / HeatmapCellSize * HeatmapCellSize,
			y: g.Y / HeatmapCellSize * HeatmapCellSize,
		}
		counts[k]++
	}

	cells := make([]domain.HeatmapCell, 0, len(counts))
	for k, n := range counts {
		cells = append(cells, domain.HeatmapCell{X: k.x, Y: k.y, Count: n})
	}

	// row-major order keeps the output deterministic for renderers and tests
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells, nil
}
