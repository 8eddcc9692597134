package dto

type GiftCodeInput struct {
	Code    string      `json:"code" validate:"notblank"`
	Montant interface{} `json:"montant"`
}

// GiftCodeUpdate holds the code of a partial update; montant and isUsed are
// checked by the service.
type GiftCodeUpdate struct {
	Code *string `json:"code,omitempty" validate:"omitnil,notblank"`
}
