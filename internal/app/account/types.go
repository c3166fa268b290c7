package account

type RegisterRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Password       string `json:"password"`
	PasswordRepeat string `json:"password_repeat"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Balance   int64  `json:"balance"`
	Role      string `json:"role"`
}

type RechargeResponse struct {
	Balance int64 `json:"balance"`
}
