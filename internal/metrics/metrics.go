package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfbook_bets_placed_total",
		Help: "Bets successfully placed.",
	})
	BetTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turfbook_bet_transitions_total",
		Help: "Successful bet state transitions by target state.",
	}, []string{"state"})
	BetTransitionRejects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfbook_bet_transition_rejects_total",
		Help: "Bet transitions rejected by a state precondition.",
	})
	RacesResulted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfbook_races_resulted_total",
		Help: "Races that had finishing positions assigned.",
	})
)
