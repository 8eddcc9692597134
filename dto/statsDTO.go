package dto

type StatsResponse struct {
	TotalUsers           int `json:"totalUsers"`
	TotalMerchants       int `json:"totalMerchants"`
	TotalTransactions    int `json:"totalTransactions"`
	TotalGiftCodes       int `json:"totalGiftCodes"`
	PendingVerifications int `json:"pendingVerifications"`
}
