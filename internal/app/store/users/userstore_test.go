package userstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/rashamuf/museumhub/internal/app/store/users"
	"github.com/rashamuf/museumhub/internal/domain/models"
	"github.com/rashamuf/museumhub/internal/testutil"
)

func TestStore_FetchOrCreate_NewIdentity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.FetchOrCreate(ctx, userstore.Identity{
		UID:           "google-uid-1",
		Name:          "  سارة  ",
		Email:         "Sara@Example.EDU",
		Method:        "google",
		EmailVerified: true,
	})
	if err != nil {
		t.Fatalf("FetchOrCreate failed: %v", err)
	}

	if u.ID != "google-uid-1" {
		t.Errorf("id = %q, want the provider uid", u.ID)
	}
	if u.Name != "سارة" {
		t.Errorf("name = %q, want trimmed", u.Name)
	}
	if u.Email != "sara@example.edu" {
		t.Errorf("email = %q, want lowercased", u.Email)
	}
	if u.Role != models.RoleMember {
		t.Errorf("role = %q, want member", u.Role)
	}
	if u.LastLogin == nil || u.LastLogin.IsZero() {
		t.Error("expected last login to be stamped")
	}
}

func TestStore_FetchOrCreate_ExistingIdentity_RefreshesProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.FetchOrCreate(ctx, userstore.Identity{
		UID: "google-uid-1", Name: "Old Name", Email: "a@b.edu", Method: "google",
	})
	if err != nil {
		t.Fatalf("first FetchOrCreate failed: %v", err)
	}

	second, err := store.FetchOrCreate(ctx, userstore.Identity{
		UID: "google-uid-1", Name: "New Name", Email: "a@b.edu", Method: "google",
		PhotoURL: "https://img.example/p.png",
	})
	if err != nil {
		t.Fatalf("second FetchOrCreate failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the same account, got %q and %q", first.ID, second.ID)
	}
	if second.Name != "New Name" || second.PhotoURL != "https://img.example/p.png" {
		t.Errorf("profile not refreshed: %+v", second)
	}

	fetched, err := store.Fetch(ctx, "google-uid-1")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if fetched.Name != "New Name" {
		t.Errorf("persisted name = %q, want refreshed", fetched.Name)
	}
}

func TestStore_SetBanned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	member := fx.CreateUser(ctx, "Member", "m@test.edu", models.RoleMember)
	admin := fx.CreateUser(ctx, "Admin", "a@test.edu", models.RoleAdmin)

	if err := store.SetBanned(ctx, member.ID, true); err != nil {
		t.Fatalf("SetBanned(member) failed: %v", err)
	}
	got, err := store.Fetch(ctx, member.ID)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !got.IsBanned {
		t.Error("expected member to be banned")
	}

	if err := store.SetBanned(ctx, admin.ID, true); !errors.Is(err, userstore.ErrAdminImmutable) {
		t.Errorf("SetBanned(admin) = %v, want ErrAdminImmutable", err)
	}

	if err := store.SetBanned(ctx, "missing-id", true); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("SetBanned(missing) = %v, want ErrNoDocuments", err)
	}
}
