package domain

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleLecturer Role = "LECTURER"
	RoleStudent  Role = "STUDENT"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLecturer, RoleStudent:
		return true
	}
	return false
}

type Account struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CreatedOn    string `json:"created_on"`
}

// Principal is the authenticated actor executing a request. A nil
// *Principal means the request is anonymous.
type Principal struct {
	AccountID int32 `json:"account_id"`
	Role      Role  `json:"role"`
}

// OwnershipCounts reports how many records still reference an account.
// An account may only be deleted when all three counts are zero.
type OwnershipCounts struct {
	Projects    int32 `json:"projects"`
	Submissions int32 `json:"submissions"`
	Memberships int32 `json:"memberships"`
}

func (c OwnershipCounts) Zero() bool {
	return c.Projects == 0 && c.Submissions == 0 && c.Memberships == 0
}
