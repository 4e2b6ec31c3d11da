package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

var (
	ErrInvalidShape     = errors.New("invalid target shape")
	ErrInvalidShortCode = errors.New("short code must be 4 digits")
	ErrCodeSpaceFull    = errors.New("could not assign a free short code")
)

// shortCodeAttempts bounds the retry loop when a freshly generated code is
// already claimed. With a 4-digit space this only matters near saturation.
const shortCodeAttempts = 10

// Registry assigns post ids and human-facing 4-digit join codes, and
// resolves codes back to games.
type Registry struct {
	games    *repository.GameRepository
	counters *repository.CounterRepository

	newPostID func() string
	randDigit func(n int) string
}

func NewRegistry(games *repository.GameRepository, counters *repository.CounterRepository) *Registry {
	return &Registry{
		games:     games,
		counters:  counters,
		newPostID: newPostID,
		randDigit: randDigits,
	}
}

// newPostID mints an opaque id in the hosting platform's post-id style.
func newPostID() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return "post_" + hex.EncodeToString(buf)
}

// randDigits returns n random decimal digits, leading zeros allowed.
func randDigits(n int) string {
	max := big.NewInt(1)
	for i := 0; i < n; i++ {
		max.Mul(max, big.NewInt(10))
	}
	v, _ := rand.Int(rand.Reader, max)
	return fmt.Sprintf("%0*d", n, v)
}

// Create persists a new game for the given creator. The short code is
// generated randomly and claimed through the index before the record is
// written, retrying on collision so two games never share a code.
func (r *Registry) Create(ctx context.Context, createdBy string, target domain.TargetShape, canvas domain.CanvasConfig) (*domain.GameRecord, error) {
	if !domain.ValidShapeKind(target.Kind) || !domain.ValidShapeColor(target.Color) {
		return nil, ErrInvalidShape
	}

	if canvas.Width <= 0 {
		canvas.Width = domain.DefaultCanvasWidth
	}
	if canvas.Height <= 0 {
		canvas.Height = domain.DefaultCanvasHeight
	}
	if !target.InBounds(canvas.Width, canvas.Height) {
		return nil, ErrInvalidShape
	}

	id := r.newPostID()

	shortID, err := r.claimShortCode(ctx, id)
	if err != nil {
		return nil, err
	}

	g := &domain.GameRecord{
		ID:        id,
		ShortID:   shortID,
		CreatedBy: createdBy,
		Target:    target,
		Canvas:    canvas,
		Revealed:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.games.Create(ctx, g); err != nil {
		return nil, err
	}

	if _, err := r.counters.IncrGames(ctx); err != nil {
		// counter is best-effort; the game itself is already durable
		logger.Error("failed to increment total_games", "game", id, "error", err)
	}

	logger.Info("game created", "game", id, "short_id", shortID, "creator", createdBy)
	return g, nil
}

func (r *Registry) claimShortCode(ctx context.Context, gameID string) (string, error) {
	for i := 0; i < shortCodeAttempts; i++ {
		code := r.randDigit(4)
		ok, err := r.games.IndexShortCode(ctx, code, gameID)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}
	}
	return "", ErrCodeSpaceFull
}

// CreateHub provisions the singleton hub record with a fixed title. Safe to
// call repeatedly: the first hub sticks and later calls return it.
func (r *Registry) CreateHub(ctx context.Context, createdBy string) (*domain.GameRecord, error) {
	existing, err := r.games.GetHub(ctx)
	if err != nil {
		return nil, err
	}
	if existing != "" {
		return r.games.Get(ctx, existing)
	}

	hub := &domain.GameRecord{
		ID:        r.newPostID(),
		CreatedBy: createdBy,
		IsHub:     true,
		CreatedAt: time.Now().UTC(),
	}

	ok, err := r.games.SetHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// lost the race to another moderator; use theirs
		id, err := r.games.GetHub(ctx)
		if err != nil {
			return nil, err
		}
		return r.games.Get(ctx, id)
	}

	if err := r.games.Create(ctx, hub); err != nil {
		return nil, err
	}

	logger.Info("hub created", "post", hub.ID, "creator", createdBy)
	return hub, nil
}

// Resolve maps a 4-digit join code to a game id. The direct index is tried
// first; on a miss every known game is scanned for an embedded code match
// and the index is backfilled before returning.
func (r *Registry) Resolve(ctx context.Context, code string) (string, error) {
	if !validShortCode(code) {
		return "", ErrInvalidShortCode
	}

	id, err := r.games.ResolveShortCode(ctx, code)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, repository.ErrGameNotFound) {
		return "", err
	}

	ids, err := r.games.ListGameIDs(ctx)
	if err != nil {
		return "", err
	}

	for _, gameID := range ids {
		g, err := r.games.Get(ctx, gameID)
		if err != nil {
			continue
		}
		if g.ShortID == code {
			if _, err := r.games.IndexShortCode(ctx, code, gameID); err != nil {
				logger.Error("short code backfill failed", "code", code, "error", err)
			}
			return gameID, nil
		}
	}

	return "", repository.ErrGameNotFound
}

func validShortCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
