package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	AccountRepoName RepositoryName = "account"
	HoldingRepoName RepositoryName = "holding"
	TradeRepoName   RepositoryName = "trade"
)
