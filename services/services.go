package services

import (
	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

// Services bundles every service the HTTP layer and the CLI use.
type Services struct {
	Users        *UserService
	Merchants    *MerchantService
	Transactions *TransactionService
	GiftCodes    *GiftCodeService
	Stats        *StatsService
}

func New(st store.Store, log *logger.Logger, observer MergeObserver) *Services {
	return &Services{
		Users:        NewUserService(st),
		Merchants:    NewMerchantService(st, log, observer),
		Transactions: NewTransactionService(st),
		GiftCodes:    NewGiftCodeService(st),
		Stats:        NewStatsService(st),
	}
}
