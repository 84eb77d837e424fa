package authz

import (
	"github.com/annorax/sleek-travel-backend/internal/domain"
)

// Policy is the per-operation access descriptor. It replaces per-field
// annotation metadata with an explicit value registered alongside each
// operation (see registry.go) and evaluated without reflection.
type Policy struct {
	// RequiredRoles is the set of roles allowed to call the operation.
	// Empty means any authenticated principal.
	RequiredRoles []domain.Role

	// OwnDataOnly restricts the operation to rows owned by the caller,
	// checked against the request's where-style arguments. Admins bypass
	// the ownership check.
	OwnDataOnly bool
}

// Arguments is the decoded argument structure of an inbound operation, as
// the GraphQL layer hands it over. Ownership looks for an equality filter
// on "userId" inside the "where" member.
type Arguments map[string]any

// Authorize evaluates the decision table in order and returns
// domain.ErrUnauthorized on denial.
func Authorize(principal *domain.User, pol Policy, args Arguments) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}
	if len(pol.RequiredRoles) == 0 {
		if !pol.OwnDataOnly {
			return nil
		}
		if ownsRequestedRows(principal, args) {
			return nil
		}
		return domain.ErrUnauthorized
	}
	if !roleIn(principal.Role, pol.RequiredRoles) {
		return domain.ErrUnauthorized
	}
	if !pol.OwnDataOnly {
		return nil
	}
	if principal.Role == domain.RoleAdmin || ownsRequestedRows(principal, args) {
		return nil
	}
	return domain.ErrUnauthorized
}

func roleIn(role domain.Role, set []domain.Role) bool {
	for _, r := range set {
		if r == role {
			return true
		}
	}
	return false
}

// ownsRequestedRows checks that the request's where filter pins userId to
// the principal's own id. A missing or non-equality filter fails closed:
// absence is a denial, never a wildcard.
func ownsRequestedRows(principal *domain.User, args Arguments) bool {
	id, ok := UserIDFilter(args)
	return ok && id == principal.ID.String()
}

// UserIDFilter extracts the userId equality filter from the arguments'
// "where" member. Accepts either a bare value or the {"equals": value}
// comparison form.
func UserIDFilter(args Arguments) (string, bool) {
	if args == nil {
		return "", false
	}
	where, ok := args["where"].(map[string]any)
	if !ok {
		return "", false
	}
	switch v := where["userId"].(type) {
	case string:
		return v, v != ""
	case map[string]any:
		eq, ok := v["equals"].(string)
		return eq, ok && eq != ""
	default:
		return "", false
	}
}
