package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
)

// ErrGameNotFound is returned when a game id or short code resolves to nothing.
var ErrGameNotFound = errors.New("game not found")

// GameRepository persists GameRecords over the key-value store. The record
// body and the canvas configuration live under separate keys so the canvas
// (large, immutable) can be fetched and cached independently.
type GameRepository struct {
	store kv.Store
}

func NewGameRepository(store kv.Store) *GameRepository {
	return &GameRepository{store: store}
}

// Create persists a new game: record body, canvas, short-code index entry,
// and an append to the global games list. Not transactional; the record
// body is written first so a partial failure never yields a dangling index.
func (r *GameRepository) Create(ctx context.Context, g *domain.GameRecord) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, keyGameData(g.ID), string(data)); err != nil {
		return err
	}

	canvas, err := json.Marshal(g.Canvas)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, keyCanvas(g.ID), string(canvas)); err != nil {
		return err
	}

	if g.ShortID != "" {
		// SetNX keeps an existing mapping; a short code is never reassigned.
		if _, err := r.store.SetNX(ctx, keyIDIndex(g.ShortID), g.ID); err != nil {
			return err
		}
	}

	return r.appendGameID(ctx, g.ID)
}

// Get loads a game record. The revealed flag lives under its own key and is
// merged in here so callers always see the current lifecycle state.
func (r *GameRepository) Get(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	raw, err := r.store.Get(ctx, keyGameData(gameID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	var g domain.GameRecord
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}

	revealed, err := r.IsRevealed(ctx, gameID)
	if err != nil {
		return nil, err
	}
	g.Revealed = revealed
	return &g, nil
}

// GetCanvas loads the canvas configuration for a game.
func (r *GameRepository) GetCanvas(ctx context.Context, gameID string) (*domain.CanvasConfig, error) {
	raw, err := r.store.Get(ctx, keyCanvas(gameID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	var c domain.CanvasConfig
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetRevealed flips the game into its terminal revealed state. Writing the
// sentinel twice is harmless, which makes reveal idempotent.
func (r *GameRepository) SetRevealed(ctx context.Context, gameID string) error {
	return r.store.Set(ctx, keyRevealed(gameID), "true")
}

// IsRevealed reports the lifecycle flag; an absent key means still active.
func (r *GameRepository) IsRevealed(ctx context.Context, gameID string) (bool, error) {
	val, err := r.store.Get(ctx, keyRevealed(gameID))
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

// ListGameIDs returns all known game ids in creation order.
func (r *GameRepository) ListGameIDs(ctx context.Context) ([]string, error) {
	raw, err := r.store.Get(ctx, keyGamesList)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GameRepository) appendGameID(ctx context.Context, gameID string) error {
	ids, err := r.ListGameIDs(ctx)
	if err != nil {
		return err
	}
	ids = append(ids, gameID)

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, keyGamesList, string(raw))
}

// ResolveShortCode returns the game id mapped to a short code via the
// direct index, or ErrGameNotFound on an index miss.
func (r *GameRepository) ResolveShortCode(ctx context.Context, code string) (string, error) {
	id, err := r.store.Get(ctx, keyIDIndex(code))
	if errors.Is(err, kv.ErrNotFound) {
		return "", ErrGameNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// IndexShortCode lazily backfills the short-code index. The first mapping
// for a code wins; it reports whether this call created the mapping.
func (r *GameRepository) IndexShortCode(ctx context.Context, code, gameID string) (bool, error) {
	return r.store.SetNX(ctx, keyIDIndex(code), gameID)
}

// SetHub records the hub post id. Only the first hub creation sticks.
func (r *GameRepository) SetHub(ctx context.Context, gameID string) (bool, error) {
	return r.store.SetNX(ctx, keyHubPost, gameID)
}

// GetHub returns the hub post id, or "" when no hub has been provisioned.
func (r *GameRepository) GetHub(ctx context.Context) (string, error) {
	id, err := r.store.Get(ctx, keyHubPost)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}
