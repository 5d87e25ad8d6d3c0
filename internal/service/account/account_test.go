package account

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// The embedded store does not tolerate concurrent writers.
	db.SetMaxOpenConns(1)

	client := repo.NewClient(repo.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { client.Close() })

	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return client
}

func seedUserWithRoles(t *testing.T, client *repo.Client, n int, roles ...string) {
	t.Helper()
	_, err := client.User.Create().
		SetPublicID(fmt.Sprintf("AC-%02d-", n) + uuid.NewString()[:8]).
		SetName(fmt.Sprintf("Account %02d", n)).
		SetEmail(uuid.NewString()[:8] + "@wasel.test").
		SetRoles(roles).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestListRoleFilterKeepsPagesFull(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	// Interleave roles so a post-pagination filter would visibly shrink
	// the first page below PerPage.
	for i := 0; i < 5; i++ {
		seedUserWithRoles(t, client, i*2, model.RoleClient)
		seedUserWithRoles(t, client, i*2+1, model.RoleCourier)
	}

	role := model.RoleClient
	page1, err := svc.List(ctx, ListRequest{Role: &role, Page: 1, PerPage: 3})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(page1) != 3 {
		t.Fatalf("page 1 size = %d, want 3", len(page1))
	}
	for _, u := range page1 {
		if !hasRole(u.Roles, model.RoleClient) {
			t.Errorf("user %s roles = %v, want client", u.PublicID, u.Roles)
		}
	}

	page2, err := svc.List(ctx, ListRequest{Role: &role, Page: 2, PerPage: 3})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("page 2 size = %d, want 2", len(page2))
	}

	seen := map[uuid.UUID]bool{}
	for _, u := range append(page1, page2...) {
		if seen[u.ID] {
			t.Errorf("user %s appears on both pages", u.PublicID)
		}
		seen[u.ID] = true
	}
}

func TestListMatchesAnyHeldRole(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	seedUserWithRoles(t, client, 0, model.RoleStaff, model.RoleAdmin)
	seedUserWithRoles(t, client, 1, model.RoleStaff)
	seedUserWithRoles(t, client, 2, model.RoleClient)

	role := model.RoleAdmin
	admins, err := svc.List(ctx, ListRequest{Role: &role, Page: 1, PerPage: 20})
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("admin count = %d, want 1", len(admins))
	}

	all, err := svc.List(ctx, ListRequest{Page: 1, PerPage: 20})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered count = %d, want 3", len(all))
	}
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
