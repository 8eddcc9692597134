package model

const (
	GiftCodeCode    = "code"
	GiftCodeMontant = "montant"
	GiftCodeIsUsed  = "isUsed"
)

type GiftCode struct {
	Code      string  `json:"code" firestore:"code"`
	Montant   float64 `json:"montant" firestore:"montant"`
	CreatedAt int64   `json:"createdAt" firestore:"createdAt"`
	IsUsed    bool    `json:"isUsed" firestore:"isUsed"`
}

// Fields returns the stored form of the gift code.
func (g GiftCode) Fields() map[string]interface{} {
	return map[string]interface{}{
		GiftCodeCode:    g.Code,
		GiftCodeMontant: g.Montant,
		FieldCreatedAt:  g.CreatedAt,
		GiftCodeIsUsed:  g.IsUsed,
	}
}
