package repoargs

type CreateUser struct {
	Username      string
	Password      string
	WalletAddress string
	ReferralCode  string
	ReferredBy    *int64
}
