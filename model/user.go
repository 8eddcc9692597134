package model

// User fields as written by the wallet app at signup and by admin edits.
const (
	UserFirstName       = "firstName"
	UserLastName        = "lastName"
	UserUsername        = "username"
	UserEmail           = "email"
	UserBalance         = "balance"
	UserBetaCoin        = "betaCoin"
	UserCodeTransaction = "codeTransaction"
	UserVerified        = "verified"
	UserTermsAccepted   = "termsAccepted"
	UserRole            = "role"
	UserDateSignUp      = "dateSignUp"
)

type User struct {
	FirstName       string   `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName        string   `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	Username        string   `json:"username,omitempty" firestore:"username,omitempty"`
	Email           string   `json:"email,omitempty" firestore:"email,omitempty"`
	BirthDate       string   `json:"birthDate,omitempty" firestore:"birthDate,omitempty"`
	PhoneNumber     string   `json:"phoneNumber,omitempty" firestore:"phoneNumber,omitempty"`
	Password        string   `json:"password,omitempty" firestore:"password,omitempty"`
	Gender          string   `json:"gender,omitempty" firestore:"gender,omitempty"`
	TermsAccepted   bool     `json:"termsAccepted,omitempty" firestore:"termsAccepted,omitempty"`
	CodeTransaction float64  `json:"codeTransaction,omitempty" firestore:"codeTransaction,omitempty"`
	VoucherTab      []string `json:"voucherTab,omitempty" firestore:"voucherTab,omitempty"`
	Balance         float64  `json:"balance,omitempty" firestore:"balance,omitempty"`
	BetaCoin        float64  `json:"betaCoin,omitempty" firestore:"betaCoin,omitempty"` // bonus currency
	Verified        bool     `json:"verified,omitempty" firestore:"verified,omitempty"`
	Role            string   `json:"role,omitempty" firestore:"role,omitempty"`
	DateSignUp      string   `json:"dateSignUp,omitempty" firestore:"dateSignUp,omitempty"`
	CreatedAt       int64    `json:"createdAt,omitempty" firestore:"createdAt,omitempty"` // ms since epoch
}

// DisplayName picks the first non-empty of username and first name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
