package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	TransactionRepoName     RepositoryName = "transaction"
	ReferralEarningRepoName RepositoryName = "referral_earning"
	PackageRepoName         RepositoryName = "package"
	DailyClicksRepoName     RepositoryName = "daily_clicks"
)
