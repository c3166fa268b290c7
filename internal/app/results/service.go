package results

import (
	"context"
	"errors"

	"turfbook/internal/ledger"
	"turfbook/internal/store"
)

type Service struct {
	store  *store.Store
	ledger *ledger.Ledger
}

func NewService(st *store.Store, led *ledger.Ledger) *Service {
	return &Service{store: st, ledger: led}
}

func (s *Service) UnresultedRaces(ctx context.Context) (*UnresultedRacesResponse, error) {
	races, err := s.store.ListUnresultedRaces(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]RaceItem, 0, len(races))
	for _, r := range races {
		items = append(items, RaceItem{ID: r.ID, StartTime: r.StartTime, Place: r.Place, Distance: r.Distance})
	}
	return &UnresultedRacesResponse{Items: items}, nil
}

// CreateRace seeds a race and its contestants. Races are immutable after
// creation; only positions change later, via AssignResults.
func (s *Service) CreateRace(ctx context.Context, req CreateRaceRequest) (*CreateRaceResponse, error) {
	if req.Place == "" || req.Distance <= 0 || req.StartTime.IsZero() {
		return nil, ErrInvalidRequest
	}
	for _, h := range req.Horses {
		if h.HorseName == "" || h.Coefficient <= 0 {
			return nil, ErrInvalidRequest
		}
	}
	raceID, err := s.store.CreateRace(ctx, req.StartTime, req.Place, req.Distance)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(req.Horses))
	for _, h := range req.Horses {
		id, err := s.store.AddContestant(ctx, raceID, h.HorseName, h.Coefficient)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return &CreateRaceResponse{RaceID: raceID, ContestantIDs: ids}, nil
}

// AssignResults writes a random permutation of finishing positions across
// the race's unresulted horses in one atomic batch.
func (s *Service) AssignResults(ctx context.Context, raceID string) (*AssignResultsResponse, error) {
	if raceID == "" {
		return nil, ErrInvalidRequest
	}
	if err := s.ledger.AssignResults(ctx, raceID); err != nil {
		if errors.Is(err, ledger.ErrNoUnresultedHorses) {
			return nil, ErrNoUnresultedHorses
		}
		return nil, err
	}
	return &AssignResultsResponse{RaceID: raceID}, nil
}
