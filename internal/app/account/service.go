package account

import (
	"context"
	"errors"
	"regexp"
	"time"

	"turfbook/internal/store"

	"github.com/rs/zerolog/log"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 4

type Service struct {
	store          *store.Store
	rechargeAmount int64
	sessionTTL     time.Duration
}

func NewService(st *store.Store, rechargeAmount int64, sessionTTL time.Duration) *Service {
	return &Service{store: st, rechargeAmount: rechargeAmount, sessionTTL: sessionTTL}
}

// Register creates a bettor account and logs it in, returning a session
// token. New accounts start with a zero balance; recharge funds them.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}
	_, err := s.store.CreateUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, store.RoleUser)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return s.Login(ctx, LoginRequest{Email: req.Email, Password: req.Password})
}

// Login checks the stored credential by equality and issues a session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidRequest
	}
	u, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if req.Password != u.Password {
		log.Info().Str("user_id", u.ID).Msg("login with non-matching password")
		return nil, ErrBadCredentials
	}
	token, err := s.store.CreateSession(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: toProfile(u)}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// Recharge adds the configured fixed increment to the user's balance and
// returns the new balance.
func (s *Service) Recharge(ctx context.Context, userID string) (*RechargeResponse, error) {
	if err := s.store.IncreaseBalance(ctx, userID, s.rechargeAmount); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	bal, err := s.store.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RechargeResponse{Balance: bal}, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p := toProfile(u)
	return &p, nil
}

func validateRegistration(req RegisterRequest) error {
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		return ErrInvalidRequest
	}
	if req.FirstName == "" || req.LastName == "" {
		return ErrInvalidRequest
	}
	if len(req.Password) < minPasswordLen {
		return ErrInvalidRequest
	}
	if req.Password != req.PasswordRepeat {
		return ErrInvalidRequest
	}
	return nil
}

func toProfile(u *store.User) Profile {
	return Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Balance:   u.Balance,
		Role:      u.Role,
	}
}
