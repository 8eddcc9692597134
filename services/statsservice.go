package services

import (
	"context"

	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

type StatsService struct {
	store store.Store
}

func NewStatsService(st store.Store) *StatsService {
	return &StatsService{store: st}
}

// Stats counts the records of every collection and the verification requests
// still pending. Verifications are read whole and filtered here, so the count
// does not depend on an index on status.
func (s *StatsService) Stats(ctx context.Context) (dto.StatsResponse, error) {
	var resp dto.StatsResponse
	counts := []struct {
		path string
		dst  *int
	}{
		{model.UsersPath, &resp.TotalUsers},
		{model.MerchantsPath, &resp.TotalMerchants},
		{model.TransactionsPath, &resp.TotalTransactions},
		{model.GiftCodesPath, &resp.TotalGiftCodes},
	}
	for _, c := range counts {
		entries, err := s.store.List(ctx, c.path)
		if err != nil {
			return dto.StatsResponse{}, storeErr("count "+c.path, err)
		}
		*c.dst = len(entries)
	}

	verifications, err := s.store.List(ctx, model.VerificationsPath)
	if err != nil {
		return dto.StatsResponse{}, storeErr("count pending verifications", err)
	}
	for _, v := range verifications {
		if stringField(v.Data, model.VerificationStatus) == model.VerificationPending {
			resp.PendingVerifications++
		}
	}
	return resp, nil
}
