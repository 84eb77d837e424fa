package authz

import "github.com/annorax/sleek-travel-backend/internal/domain"

// Registry is the static policy table consumed by the API layer: one entry
// per guarded operation group, mirroring what used to live in resolver
// annotations. Reads of user-owned aggregates are own-data-only; catalog
// reads need any authenticated caller; catalog writes need an admin.
var Registry = map[string]Policy{
	"Product.query":       {},
	"Product.mutation":    {RequiredRoles: []domain.Role{domain.RoleAdmin}},
	"Item.query":          {OwnDataOnly: true},
	"Item.mutation":       {RequiredRoles: []domain.Role{domain.RoleAdmin}},
	"PurchaseOrder.query": {OwnDataOnly: true},
	"PurchaseOrder.mutation": {
		RequiredRoles: []domain.Role{domain.RoleAdmin},
	},
	"Login.query": {OwnDataOnly: true},
}

// Lookup returns the policy registered for an operation. Callers must deny
// unregistered operations outright.
func Lookup(operation string) (Policy, bool) {
	pol, ok := Registry[operation]
	return pol, ok
}
