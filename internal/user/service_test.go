// AngelaMos | 2026
// service_test.go

package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/auth"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/testdb"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/user"
)

func newService(t *testing.T) (*user.Service, *core.Database) {
	t.Helper()
	db := testdb.New(t)
	return user.NewService(db.DB, user.NewRepository(db.DB)), db
}

func ptr(s string) *string { return &s }

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	req := user.CreateUserRequest{
		Email:  "sophie@als.fr",
		Name:   "Sophie",
		Role:   core.RoleDirectriceClientele,
		Region: core.RegionIDF,
	}
	created, err := svc.CreateUser(ctx, req)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.HasPassword() {
		t.Fatal("user without password got a hash")
	}

	req.Email = "SOPHIE@als.fr"
	if _, err := svc.CreateUser(ctx, req); !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("duplicate = %v, want ErrDuplicateKey", err)
	}
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Email: "hugo@als.fr", Name: "Hugo", Role: core.RoleDevCoIDF,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	updated, err := svc.UpdateUser(ctx, created.ID, user.UpdateUserRequest{
		Role:   ptr(core.RoleDevCoHDF),
		Region: ptr(core.RegionHDF),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Role != core.RoleDevCoHDF || core.StringValue(updated.Region) != core.RegionHDF {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.Name != "Hugo" {
		t.Fatalf("name changed to %q", updated.Name)
	}

	if _, err := svc.UpdateUser(ctx, "missing", user.UpdateUserRequest{Name: ptr("x")}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("missing = %v, want ErrNotFound", err)
	}
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Email: "direction@als.fr", Name: "Direction", Role: core.RoleAdminDirecteur,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	actor := policy.Principal{ID: admin.ID, Role: admin.Role}

	err = svc.DeleteUser(ctx, actor, admin.ID)
	if !errors.Is(err, core.ErrSelfDelete) {
		t.Fatalf("DeleteUser(self) = %v, want ErrSelfDelete", err)
	}

	if _, err := svc.GetByID(ctx, admin.ID); err != nil {
		t.Fatalf("admin vanished after rejected delete: %v", err)
	}
}

func TestDeleteUserCascadesSessions(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	admin := policy.Principal{ID: "admin-1", Role: core.RoleAdminDirecteur}
	target, err := svc.Create(ctx, auth.NewUser{Email: "julie@als.fr", Name: "Julie"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sessions := auth.NewRepository(db.DB)
	now := time.Now().UTC()
	err = sessions.Create(ctx, &auth.Session{
		ID:        "s-1",
		UserID:    target.ID,
		TokenHash: core.HashToken("julie-token"),
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := svc.DeleteUser(ctx, admin, target.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := sessions.FindActive(ctx, core.HashToken("julie-token"), now); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("session survived user delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, target.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("user survived delete: %v", err)
	}

	if err := svc.DeleteUser(ctx, admin, target.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	target, err := svc.Create(ctx, auth.NewUser{Email: "tom@als.fr", Name: "Tom"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	devco := policy.Principal{ID: "dev", Role: core.RoleDevCoIDF}
	if err := svc.DeleteUser(ctx, devco, target.ID); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("DeleteUser = %v, want ErrForbidden", err)
	}
}
