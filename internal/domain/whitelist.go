package domain

// WhitelistedUser is a standing permission record keyed to a user,
// removed as the first step of the account deletion cascade.
type WhitelistedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}
