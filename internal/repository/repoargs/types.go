package repoargs

type RepositoryName string

const (
	UserRepoName       RepositoryName = "user"
	RequestRepoName    RepositoryName = "investment_request"
	ContractRepoName   RepositoryName = "contract"
	SettingRepoName    RepositoryName = "setting"
	NewsletterRepoName RepositoryName = "newsletter"
	ReferralRepoName   RepositoryName = "referral"
	TCFLeadRepoName    RepositoryName = "tcf_lead"
)
