package shipment

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
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

func seedShipmentAt(t *testing.T, client *repo.Client, clientID uuid.UUID, status string, updatedAt time.Time) *repo.Shipment {
	t.Helper()
	sh, err := client.Shipment.Create().
		SetDisplayID("giz-260830-1-" + uuid.NewString()[:4]).
		SetClientID(clientID).
		SetRecipientName("Hany Mostafa").
		SetRecipientPhone("+201112345678").
		SetFromAddress(model.Address{Street: "3 El Haram", City: "giza", Zone: "haram"}).
		SetToAddress(model.Address{Street: "9 Gameat El Dewal", City: "giza", Zone: "mohandessin"}).
		SetPaymentMethod(entshipment.PaymentMethodCod).
		SetStatus(entshipment.Status(status)).
		SetStatusHistory([]model.StatusEvent{{Status: status, At: updatedAt}}).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed shipment: %v", err)
	}
	return sh
}

func TestSweepOverdueOnlyFlags(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	sender, err := client.User.Create().
		SetPublicID("CL-" + uuid.NewString()[:8]).
		SetName("Omar Shalaby").
		SetEmail(uuid.NewString()[:8] + "@wasel.test").
		SetRoles([]string{model.RoleClient}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	stuck := seedShipmentAt(t, client, sender.ID, model.StatusOutForDelivery, time.Now().Add(-72*time.Hour))
	fresh := seedShipmentAt(t, client, sender.ID, model.StatusOutForDelivery, time.Now().Add(-1*time.Hour))
	seedShipmentAt(t, client, sender.ID, model.StatusDelivered, time.Now().Add(-72*time.Hour))

	logger := slog.New(slog.DiscardHandler)
	svc := New(client, events.NewPublisher(nil, logger), logger)

	flagged, err := svc.SweepOverdue(ctx, 48*time.Hour)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if flagged != 1 {
		t.Errorf("flagged = %d, want 1", flagged)
	}

	// The sweep reports stuck shipments but never fails them; failing a
	// shipment charges the client, so it stays an operator action.
	for _, sh := range []*repo.Shipment{stuck, fresh} {
		got, err := client.Shipment.Get(ctx, sh.ID)
		if err != nil {
			t.Fatalf("get shipment: %v", err)
		}
		if string(got.Status) != model.StatusOutForDelivery {
			t.Errorf("shipment %s status = %s, want out_for_delivery", sh.DisplayID, got.Status)
		}
	}

	// No financial side effects either.
	if n, err := client.Transaction.Query().Count(ctx); err != nil || n != 0 {
		t.Errorf("transaction count = %d (err %v), want 0", n, err)
	}
}
