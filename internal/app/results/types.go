package results

import "time"

type UnresultedRacesResponse struct {
	Items []RaceItem `json:"items"`
}

type RaceItem struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	Place     string    `json:"place"`
	Distance  int       `json:"distance"`
}

type CreateRaceRequest struct {
	StartTime time.Time          `json:"start_time"`
	Place     string             `json:"place"`
	Distance  int                `json:"distance"`
	Horses    []CreateHorseEntry `json:"horses"`
}

type CreateHorseEntry struct {
	HorseName   string  `json:"horse_name"`
	Coefficient float64 `json:"coefficient"`
}

type CreateRaceResponse struct {
	RaceID        string   `json:"race_id"`
	ContestantIDs []string `json:"contestant_ids"`
}

type AssignResultsResponse struct {
	RaceID string `json:"race_id"`
}
