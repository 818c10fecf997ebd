package identity

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Role is the authorization role of a user.
type Role int

const (
	RoleUnknown Role = iota
	RoleStoreUser
	RoleApprover
	RoleFulfillmentAgent
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleStoreUser:        "STORE_USER",
		RoleApprover:         "APPROVER",
		RoleFulfillmentAgent: "FULFILLMENT_AGENT",
		RoleAdmin:            "ADMIN",
	}
}

// ParseRole converts a wire name such as "FULFILLMENT_AGENT" into a Role.
func ParseRole(name string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a known role", name),
	)
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsPrivileged reports whether the role may list every order.
func (r Role) IsPrivileged() bool {
	return r == RoleApprover || r == RoleAdmin || r == RoleFulfillmentAgent
}
