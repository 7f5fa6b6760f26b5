package domain

type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "PENDING"
	MembershipStatusApproved MembershipStatus = "APPROVED"
	MembershipStatusRejected MembershipStatus = "REJECTED"
)

type ReviewDecision string

const (
	ReviewDecisionApprove ReviewDecision = "approve"
	ReviewDecisionReject  ReviewDecision = "reject"
)

// Membership is the (project, account) relation. At most one row exists
// per pair; the database enforces the uniqueness.
type Membership struct {
	ID        int32            `json:"id"`
	ProjectID int32            `json:"project_id"`
	AccountID int32            `json:"account_id"`
	Status    MembershipStatus `json:"status"`
	AddedOn   string           `json:"added_on"`
}
