package user

// Role mirrors the user_roles lookup rows.
type Role uint

const (
	RoleClient   Role = 1
	RoleEmployee Role = 2
	RoleAdmin    Role = 3
)

func (r Role) ID() uint { return uint(r) }

func (r Role) Name() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleEmployee:
		return "employee"
	case RoleAdmin:
		return "admin"
	}
	return "unknown"
}

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleEmployee || r == RoleAdmin
}

var AllRoles = []Role{RoleClient, RoleEmployee, RoleAdmin}
