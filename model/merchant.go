package model

const (
	MerchantBusinessName   = "businessName"
	MerchantOwnerEmail     = "ownerEmail"
	MerchantOwnerFirstName = "ownerFirstName"
	MerchantOwnerLastName  = "ownerLastName"
	MerchantBalance        = "balance"
	MerchantAuthID         = "authId"
)

type Merchant struct {
	BusinessName        string  `json:"businessName" firestore:"businessName"`
	BusinessDomain      string  `json:"businessDomain,omitempty" firestore:"businessDomain,omitempty"`
	BusinessLocation    string  `json:"businessLocation,omitempty" firestore:"businessLocation,omitempty"`
	BusinessDescription string  `json:"businessDescription,omitempty" firestore:"businessDescription,omitempty"`
	OwnerFirstName      string  `json:"ownerFirstName" firestore:"ownerFirstName"`
	OwnerLastName       string  `json:"ownerLastName" firestore:"ownerLastName"`
	OwnerUsername       string  `json:"ownerUsername,omitempty" firestore:"ownerUsername,omitempty"`
	OwnerEmail          string  `json:"ownerEmail" firestore:"ownerEmail"`
	OwnerCIN            string  `json:"ownerCIN,omitempty" firestore:"ownerCIN,omitempty"`
	OwnerPassword       string  `json:"ownerPassword,omitempty" firestore:"ownerPassword,omitempty"`
	TermsAccepted       bool    `json:"termsAccepted,omitempty" firestore:"termsAccepted,omitempty"`
	Balance             float64 `json:"balance" firestore:"balance"`
	Role                string  `json:"role,omitempty" firestore:"role,omitempty"`
	AuthID              string  `json:"authId,omitempty" firestore:"authId,omitempty"` // Firebase Auth uid
	CreatedAt           int64   `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}
