package bookie

import (
	"context"

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

// UnviewedBets lists every bet still needing a bookmaker action. Each
// distinct owner is fetched once per call, not once per row.
func (s *Service) UnviewedBets(ctx context.Context) (*UnviewedBetsResponse, error) {
	rows, err := s.store.ListUnviewedBets(ctx)
	if err != nil {
		return nil, err
	}
	owners := map[string]BetOwner{}
	items := make([]UnviewedBetItem, 0, len(rows))
	for _, r := range rows {
		owner, ok := owners[r.OwnerID]
		if !ok {
			u, err := s.store.GetUserByID(ctx, r.OwnerID)
			if err != nil {
				return nil, err
			}
			owner = BetOwner{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
			owners[r.OwnerID] = owner
		}
		items = append(items, UnviewedBetItem{
			ID:            r.ID,
			State:         r.State,
			Owner:         owner,
			Amount:        r.Amount,
			Coefficient:   r.Coefficient,
			HorseName:     r.HorseName,
			RacePlace:     r.RacePlace,
			RaceStartTime: r.RaceStartTime,
			PlacedAt:      r.PlacedAt,
			HorsePosition: r.HorsePosition,
		})
	}
	return &UnviewedBetsResponse{Items: items}, nil
}

func (s *Service) Accept(ctx context.Context, betID string) (*TransitionResponse, error) {
	return s.transition(betID, store.StateAccepted, func() (bool, error) {
		return s.ledger.Accept(ctx, betID)
	})
}

func (s *Service) Decline(ctx context.Context, betID string) (*TransitionResponse, error) {
	return s.transition(betID, store.StateDeclined, func() (bool, error) {
		return s.ledger.Decline(ctx, betID)
	})
}

// Determine settles an accepted bet against the observed finishing position
// of its horse: position 1 wins, anything else loses.
func (s *Service) Determine(ctx context.Context, betID string, req DetermineRequest) (*TransitionResponse, error) {
	if req.Position < 1 {
		return nil, ErrInvalidRequest
	}
	target := store.StateLose
	if req.Position == 1 {
		target = store.StateWonWaitingForPay
	}
	return s.transition(betID, target, func() (bool, error) {
		return s.ledger.DetermineResult(ctx, betID, req.Position)
	})
}

func (s *Service) Pay(ctx context.Context, betID string) (*TransitionResponse, error) {
	return s.transition(betID, store.StateWonPayed, func() (bool, error) {
		return s.ledger.Pay(ctx, betID)
	})
}

func (s *Service) transition(betID, target string, op func() (bool, error)) (*TransitionResponse, error) {
	if betID == "" {
		return nil, ErrInvalidRequest
	}
	ok, err := op()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrWrongState
	}
	return &TransitionResponse{BetID: betID, State: target}, nil
}
