package betting

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

// PlaceBet wagers amount on the given contestant for the user. The ledger
// guarantees the debit and the bet row commit together or not at all.
func (s *Service) PlaceBet(ctx context.Context, userID string, req PlaceBetRequest) (*PlaceBetResponse, error) {
	if req.ContestantID == "" {
		return nil, ErrInvalidRequest
	}
	if _, err := s.store.GetRaceIDByContestant(ctx, req.ContestantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrHorseNotFound
		}
		return nil, err
	}
	betID, err := s.ledger.Place(ctx, userID, req.ContestantID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			return nil, ErrInvalidAmount
		case errors.Is(err, ledger.ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}
	bal, err := s.store.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &PlaceBetResponse{BetID: betID, Balance: bal}, nil
}

func (s *Service) Races(ctx context.Context) (*RacesResponse, error) {
	items, err := s.store.ListRaces(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RaceItem, 0, len(items))
	for _, it := range items {
		out = append(out, toRaceItem(it))
	}
	return &RacesResponse{Items: out}, nil
}

// RaceInfo returns the race together with its contestants. Resulted is
// derived: true iff every contestant has a finishing position.
func (s *Service) RaceInfo(ctx context.Context, raceID string) (*RaceInfoResponse, error) {
	if raceID == "" {
		return nil, ErrInvalidRequest
	}
	race, err := s.store.GetRace(ctx, raceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, err
	}
	horses, err := s.store.ListContestantsByRace(ctx, raceID)
	if err != nil {
		return nil, err
	}
	resulted := len(horses) > 0
	out := make([]ContestantItem, 0, len(horses))
	for _, h := range horses {
		if h.Position == nil {
			resulted = false
		}
		out = append(out, ContestantItem{
			ID:          h.ID,
			HorseName:   h.HorseName,
			Coefficient: h.Coefficient,
			Position:    h.Position,
		})
	}
	return &RaceInfoResponse{Race: toRaceItem(*race), Resulted: resulted, Horses: out}, nil
}

// UserBets lists the user's bets ordered by race start time. The owner is
// fetched once per call and shared by every row.
func (s *Service) UserBets(ctx context.Context, userID string) (*UserBetsResponse, error) {
	owner, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListUserBets(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]BetItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toBetItem(r))
	}
	return &UserBetsResponse{
		Owner: OwnerInfo{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Balance:   owner.Balance,
		},
		Items: items,
	}, nil
}

func toRaceItem(r store.Race) RaceItem {
	return RaceItem{ID: r.ID, StartTime: r.StartTime, Place: r.Place, Distance: r.Distance}
}

func toBetItem(v store.BetView) BetItem {
	return BetItem{
		ID:            v.ID,
		State:         v.State,
		Amount:        v.Amount,
		Coefficient:   v.Coefficient,
		HorseName:     v.HorseName,
		RacePlace:     v.RacePlace,
		RaceStartTime: v.RaceStartTime,
		PlacedAt:      v.PlacedAt,
		HorsePosition: v.HorsePosition,
	}
}
