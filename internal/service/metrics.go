package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GamesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_created_total",
			Help: "Total game posts created",
		},
	)
	GuessesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guesses_recorded_total",
			Help: "Total guesses accepted, by correctness",
		},
		[]string{"correct"},
	)
	GuessesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guesses_rejected_total",
			Help: "Total guesses rejected, by reason",
		},
		[]string{"reason"},
	)
	GamesRevealed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_revealed_total",
			Help: "Total reveal transitions",
		},
	)
)

func init() {
	prometheus.MustRegister(GamesCreated)
	prometheus.MustRegister(GuessesRecorded)
	prometheus.MustRegister(GuessesRejected)
	prometheus.MustRegister(GamesRevealed)
}
