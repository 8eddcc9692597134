package dto

// MerchantInput is the subset of a merchant record that must be valid before the
// record reaches the store.
type MerchantInput struct {
	BusinessName   string      `json:"businessName" validate:"notblank"`
	OwnerEmail     string      `json:"ownerEmail" validate:"notblank"`
	OwnerFirstName string      `json:"ownerFirstName" validate:"notblank"`
	OwnerLastName  string      `json:"ownerLastName" validate:"notblank"`
	Balance        interface{} `json:"balance" validate:"jsonnumber"`
}

type MerchantDuplicateGroup struct {
	OwnerEmail string   `json:"ownerEmail"`
	IDs        []string `json:"ids"`
}
