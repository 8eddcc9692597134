package model

const (
	TransactionSender   = "id_emetteur"
	TransactionReceiver = "id_recepteur"
	TransactionAmount   = "amount"
)

type Transaction struct {
	SenderID   string  `json:"id_emetteur" firestore:"id_emetteur"`
	ReceiverID string  `json:"id_recepteur" firestore:"id_recepteur"`
	Amount     float64 `json:"amount" firestore:"amount"`
	Date       string  `json:"date,omitempty" firestore:"date,omitempty"`
	Time       string  `json:"time,omitempty" firestore:"time,omitempty"`
	CreatedAt  int64   `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}
