package betting

import "time"

type PlaceBetRequest struct {
	ContestantID string `json:"contestant_id"`
	Amount       int64  `json:"amount"`
}

type PlaceBetResponse struct {
	BetID   string `json:"bet_id"`
	Balance int64  `json:"balance"`
}

type RacesResponse struct {
	Items []RaceItem `json:"items"`
}

type RaceItem struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	Place     string    `json:"place"`
	Distance  int       `json:"distance"`
}

type RaceInfoResponse struct {
	Race     RaceItem         `json:"race"`
	Resulted bool             `json:"resulted"`
	Horses   []ContestantItem `json:"horses"`
}

type ContestantItem struct {
	ID          string  `json:"id"`
	HorseName   string  `json:"horse_name"`
	Coefficient float64 `json:"coefficient"`
	Position    *int    `json:"position"`
}

type UserBetsResponse struct {
	Owner OwnerInfo `json:"owner"`
	Items []BetItem `json:"items"`
}

type OwnerInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Balance   int64  `json:"balance"`
}

type BetItem struct {
	ID            string    `json:"id"`
	State         string    `json:"state"`
	Amount        int64     `json:"amount"`
	Coefficient   float64   `json:"coefficient"`
	HorseName     string    `json:"horse_name"`
	RacePlace     string    `json:"race_place"`
	RaceStartTime time.Time `json:"race_start_time"`
	PlacedAt      time.Time `json:"placed_at"`
	HorsePosition *int      `json:"horse_position"`
}
