package domain

import "math"

// CorrectRadius is the pixel distance within which a guess counts as a hit.
// Game-balance constant, deliberately not configurable per game.
const CorrectRadius = 15.0

// GuessRecord is one user's single guess on a game. IsCorrect is computed
// once at guess time and never recomputed.
type GuessRecord struct {
	Username     string `json:"username"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Timestamp    int64  `json:"timestamp"` // epoch milliseconds
	SecondsTaken int    `json:"secondsTaken"`
	IsCorrect    bool   `json:"isCorrect"`
}

// Distance returns the Euclidean distance between a guess and the target.
func Distance(gx, gy int, t TargetShape) float64 {
	dx := float64(gx - t.X)
	dy := float64(gy - t.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsHit reports whether a guess at (gx, gy) counts as finding the target.
// The boundary is inclusive: distance of exactly CorrectRadius is a hit.
func IsHit(gx, gy int, t TargetShape) bool {
	return Distance(gx, gy, t) <= CorrectRadius
}

// GameStats are derived per-game metrics.
type GameStats struct {
	TotalGuesses   int `json:"totalGuesses"`
	CorrectGuesses int `json:"correctGuesses"`
	SuccessRate    int `json:"successRate"` // percentage, 0-100
}

// GlobalStats are derived from the three running global counters.
type GlobalStats struct {
	TotalGames   int `json:"totalGames"`
	TotalGuesses int `json:"totalGuesses"`
	SuccessRate  int `json:"successRate"`
}

// SuccessRate computes round(correct/total*100), with 0 for an empty total.
func SuccessRate(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// HeatmapCell is a bucketed count of guesses used by the reveal view.
type HeatmapCell struct {
	X     int `json:"x"` // cell origin in canvas pixels
	Y     int `json:"y"`
	Count int `json:"count"`
}
