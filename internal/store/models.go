package store

import "time"

const (
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleBookmaker = "BOOKMAKER"
)

// Bet states. A bet starts in StateWaitingForAccept; DECLINED, LOSE and
// WON_PAYED are terminal.
const (
	StateWaitingForAccept = "WAITING_FOR_ACCEPT"
	StateAccepted         = "ACCEPTED"
	StateDeclined         = "DECLINED"
	StateLose             = "LOSE"
	StateWonWaitingForPay = "WON_WAITING_FOR_PAY"
	StateWonPayed         = "WON_PAYED"
)

type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Balance   int64
	Role      string
	CreatedAt time.Time
}

type Race struct {
	ID        string
	StartTime time.Time
	Place     string
	Distance  int
	CreatedAt time.Time
}

// Contestant is a horse entered in one race. Position is null until the
// race is resulted; 1 marks the winner.
type Contestant struct {
	ID          string
	RaceID      string
	HorseName   string
	Coefficient float64
	Position    *int
	CreatedAt   time.Time
}

type Bet struct {
	ID           string
	OwnerID      string
	ContestantID string
	Amount       int64
	State        string
	PlacedAt     time.Time
}

// BetView is the joined read model the bettor and bookmaker lists are
// built from.
type BetView struct {
	ID            string
	OwnerID       string
	State         string
	Amount        int64
	Coefficient   float64
	HorseName     string
	RacePlace     string
	RaceStartTime time.Time
	PlacedAt      time.Time
	HorsePosition *int
}

type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
