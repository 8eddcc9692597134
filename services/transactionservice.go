package services

import (
	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

type TransactionService struct {
	*Collection
}

func NewTransactionService(st store.Store) *TransactionService {
	c := NewCollection(st, "Transaction", model.TransactionsPath)
	c.Validate = validateTransaction
	return &TransactionService{Collection: c}
}

var transactionRules = recordRules(model.Transaction{})

func validateTransaction(rec store.Record) []string {
	return typeErrors(rec, transactionRules)
}
