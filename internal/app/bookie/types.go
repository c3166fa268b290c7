package bookie

import "time"

type UnviewedBetsResponse struct {
	Items []UnviewedBetItem `json:"items"`
}

type UnviewedBetItem struct {
	ID            string    `json:"id"`
	State         string    `json:"state"`
	Owner         BetOwner  `json:"owner"`
	Amount        int64     `json:"amount"`
	Coefficient   float64   `json:"coefficient"`
	HorseName     string    `json:"horse_name"`
	RacePlace     string    `json:"race_place"`
	RaceStartTime time.Time `json:"race_start_time"`
	PlacedAt      time.Time `json:"placed_at"`
	HorsePosition *int      `json:"horse_position"`
}

type BetOwner struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type DetermineRequest struct {
	Position int `json:"position"`
}

type TransitionResponse struct {
	BetID string `json:"bet_id"`
	State string `json:"state"`
}
