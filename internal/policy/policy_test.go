// AngelaMos | 2026
// policy_test.go

package policy_test

import (
	"errors"
	"testing"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
)

func TestAuthorizeAdminOperations(t *testing.T) {
	ops := []policy.Operation{
		policy.OpManageUsers,
		policy.OpManageTranslations,
		policy.OpExportData,
		policy.OpViewSystemStats,
	}

	for _, role := range core.Roles {
		p := policy.Principal{ID: "u1", Role: role}
		for _, op := range ops {
			err := policy.Authorize(p, op)
			if role == core.RoleAdminDirecteur {
				if err != nil {
					t.Errorf("Authorize(%s, %s) = %v, want nil", role, op, err)
				}
				continue
			}
			if !errors.Is(err, core.ErrForbidden) {
				t.Errorf("Authorize(%s, %s) = %v, want ErrForbidden", role, op, err)
			}
		}
	}
}

func TestAccountRegion(t *testing.T) {
	tests := []struct {
		role, region, want string
	}{
		{core.RoleAdminDirecteur, core.RegionIDF, ""},
		{core.RoleAssistanteDirection, core.RegionHDF, ""},
		{core.RoleDirectriceClientele, core.RegionIDF, core.RegionIDF},
		{core.RoleDevCoHDF, core.RegionHDF, core.RegionHDF},
		{core.RoleDevCoIDF, "", ""},
	}

	for _, tt := range tests {
		p := policy.Principal{Role: tt.role, Region: tt.region}
		if got := policy.AccountRegion(p); got != tt.want {
			t.Errorf("AccountRegion(%s/%s) = %q, want %q", tt.role, tt.region, got, tt.want)
		}
	}
}

func TestCanViewAccount(t *testing.T) {
	idf := policy.Principal{Role: core.RoleDevCoIDF, Region: core.RegionIDF}

	if err := policy.CanViewAccount(idf, core.RegionIDF); err != nil {
		t.Fatalf("same region: %v", err)
	}
	if err := policy.CanViewAccount(idf, core.RegionHDF); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("other region: %v, want ErrForbidden", err)
	}

	admin := policy.Principal{Role: core.RoleAdminDirecteur, Region: core.RegionIDF}
	if err := policy.CanViewAccount(admin, core.RegionHDF); err != nil {
		t.Fatalf("admin: %v", err)
	}

	if err := policy.CanModifyAccount(idf, core.RegionHDF); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("modify other region: %v, want ErrForbidden", err)
	}
	if err := policy.CanModifyAccount(idf, core.RegionIDF); err != nil {
		t.Fatalf("modify same region: %v", err)
	}
}

func TestOpportunityScoping(t *testing.T) {
	devco := policy.Principal{ID: "dev-1", Role: core.RoleDevCoHDF}
	direction := policy.Principal{ID: "dir-1", Role: core.RoleDirectriceClientele}
	admin := policy.Principal{ID: "adm-1", Role: core.RoleAdminDirecteur}

	if got := policy.OpportunityOwner(devco); got != "dev-1" {
		t.Errorf("OpportunityOwner(devco) = %q", got)
	}
	if got := policy.OpportunityOwner(direction); got != "" {
		t.Errorf("OpportunityOwner(direction) = %q, want unrestricted", got)
	}

	if err := policy.CanModifyOpportunity(devco, "dev-1"); err != nil {
		t.Errorf("owner modify: %v", err)
	}
	if err := policy.CanModifyOpportunity(devco, "dev-2"); !errors.Is(err, core.ErrForbidden) {
		t.Errorf("non-owner modify: %v", err)
	}
	if err := policy.CanModifyOpportunity(admin, "dev-2"); err != nil {
		t.Errorf("admin modify: %v", err)
	}

	assistant := policy.Principal{ID: "ast-1", Role: core.RoleAssistanteDirection}
	for _, reader := range []policy.Principal{direction, assistant} {
		if err := policy.CanModifyOpportunity(reader, "dev-2"); !errors.Is(err, core.ErrForbidden) {
			t.Errorf("%s modify: %v, want ErrForbidden", reader.Role, err)
		}
	}
}

func TestCanDeleteUser(t *testing.T) {
	admin := policy.Principal{ID: "adm-1", Role: core.RoleAdminDirecteur}

	if err := policy.CanDeleteUser(admin, "adm-1"); !errors.Is(err, core.ErrSelfDelete) {
		t.Fatalf("self delete: %v, want ErrSelfDelete", err)
	}
	if err := policy.CanDeleteUser(admin, "other"); err != nil {
		t.Fatalf("delete other: %v", err)
	}

	devco := policy.Principal{ID: "dev-1", Role: core.RoleDevCoIDF}
	if err := policy.CanDeleteUser(devco, "other"); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("non-admin delete: %v, want ErrForbidden", err)
	}
}

func TestRoleOrDefault(t *testing.T) {
	if got := policy.RoleOrDefault(""); got != core.RoleDevCoIDF {
		t.Fatalf("RoleOrDefault(\"\") = %q", got)
	}
	if got := policy.RoleOrDefault(core.RoleDevCoHDF); got != core.RoleDevCoHDF {
		t.Fatalf("RoleOrDefault(HDF) = %q", got)
	}
}
