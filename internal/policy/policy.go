// AngelaMos | 2026
// policy.go

// Package policy holds every role and region rule of the API in one place.
// Handlers name the operation they perform; services ask for row filters
// and per-record decisions.
package policy

import (
	"fmt"
	"slices"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Principal struct {
	ID       string
	Email    string
	Name     string
	Role     string
	Division string
	Region   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == core.RoleAdminDirecteur
}

type Operation string

const (
	OpManageUsers        Operation = "manage_users"
	OpManageTranslations Operation = "manage_translations"
	OpExportData         Operation = "export_data"
	OpViewSystemStats    Operation = "view_system_stats"
)

var adminOnly = []string{core.RoleAdminDirecteur}

var operationRoles = map[Operation][]string{
	OpManageUsers:        adminOnly,
	OpManageTranslations: adminOnly,
	OpExportData:         adminOnly,
	OpViewSystemStats:    adminOnly,
}

// regionWide roles see accounts of every region.
var regionWide = []string{
	core.RoleAdminDirecteur,
	core.RoleAssistanteDirection,
}

// ownerScoped roles only see opportunities they are responsible for.
var ownerScoped = []string{
	core.RoleDevCoIDF,
	core.RoleDevCoHDF,
}

const DefaultRole = core.RoleDevCoIDF

func Authorize(p Principal, op Operation) error {
	roles, ok := operationRoles[op]
	if !ok {
		return nil
	}
	if slices.Contains(roles, p.Role) {
		return nil
	}
	return fmt.Errorf("%s: %w", op, core.ErrForbidden)
}

// AccountRegion returns the region a listing must be restricted to, or
// "" for no restriction.
func AccountRegion(p Principal) string {
	if p.Region == "" || slices.Contains(regionWide, p.Role) {
		return ""
	}
	return p.Region
}

func CanViewAccount(p Principal, accountRegion string) error {
	region := AccountRegion(p)
	if region == "" || region == accountRegion {
		return nil
	}
	return fmt.Errorf("view account: %w", core.ErrForbidden)
}

// CanModifyAccount applies the same region scope as reads, so no route
// can act on an account its caller cannot see.
func CanModifyAccount(p Principal, accountRegion string) error {
	if err := CanViewAccount(p, accountRegion); err != nil {
		return fmt.Errorf("modify account: %w", core.ErrForbidden)
	}
	return nil
}

// OpportunityOwner returns the commercial id a listing must be restricted
// to, or "" for no restriction.
func OpportunityOwner(p Principal) string {
	if slices.Contains(ownerScoped, p.Role) {
		return p.ID
	}
	return ""
}

func CanModifyOpportunity(p Principal, owner string) error {
	if p.IsAdmin() || p.ID == owner {
		return nil
	}
	return fmt.Errorf("modify opportunity: %w", core.ErrForbidden)
}

func CanDeleteUser(p Principal, targetID string) error {
	if err := Authorize(p, OpManageUsers); err != nil {
		return err
	}
	if p.ID == targetID {
		return fmt.Errorf("delete user: %w", core.ErrSelfDelete)
	}
	return nil
}

// RoleOrDefault applies the default role to self-registered and OAuth
// accounts.
func RoleOrDefault(role string) string {
	if role == "" {
		return DefaultRole
	}
	return role
}
