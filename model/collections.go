package model

// Collection paths on the document store.
const (
	UsersPath         = "users"
	MerchantsPath     = "merchants"
	TransactionsPath  = "transactions"
	GiftCodesPath     = "gift_codes"
	VerificationsPath = "verification"
)

// Response-only attributes; never persisted inside a record.
const (
	FieldID       = "id"
	FieldUniqueID = "uniqueId"
)

const FieldCreatedAt = "createdAt"

const (
	VerificationStatus  = "status"
	VerificationPending = "pending"
)
