package domain

import "time"

// Role is a user's platform role. Stored as free text: the store does not
// reject unknown values, the validator reports them.
type Role string

const (
	RoleAdministrator  Role = "administrator"
	RoleFarmer         Role = "farmer"
	RoleBuyer          Role = "buyer"
	RoleDataAmbassador Role = "data_ambassador"
)

// Roles lists the valid roles in display order.
var Roles = []Role{RoleAdministrator, RoleFarmer, RoleBuyer, RoleDataAmbassador}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleFarmer, RoleBuyer, RoleDataAmbassador:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id PHC string
	Name         string
	Role         Role
	Location     *string
	Phone        *string
	CreatedAt    time.Time
	LastLogin    *time.Time
	IsActive     bool
}

// Seed accounts are provisioned at startup and never removed by cleanup.
const (
	SeedAdminEmail  = "admin@harvestnet.com"
	SeedFarmerEmail = "farmer@harvestnet.com"
)

// IsSeedEmail reports whether email belongs to a seed account.
func IsSeedEmail(email string) bool {
	return email == SeedAdminEmail || email == SeedFarmerEmail
}
