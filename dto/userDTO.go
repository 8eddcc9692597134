package dto

type RecentUsersQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

type MerchantLookupQuery struct {
	ID    string `form:"id"`
	Email string `form:"email"`
}
