package delivery

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/pricing"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/pkg/sms"
	"github.com/karimsaad/wasel_backend/pkg/util/codes"
)

const testCode = "482913"

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

func newTestService(t *testing.T) (Service, *repo.Client, *goredis.Client) {
	t.Helper()

	client := newTestClient(t)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	smsClient, err := sms.NewFromConfig(config.SMSConfig{Enabled: false})
	if err != nil {
		t.Fatalf("sms client: %v", err)
	}

	cfg := &config.Config{}
	cfg.Delivery = config.DeliveryConfig{CodeLength: 6, CodeTTLMinutes: 10, MaxAttempts: 3}

	logger := slog.New(slog.DiscardHandler)
	svc := New(client, rdb, smsClient, events.NewPublisher(nil, logger), cfg, logger)
	return svc, client, rdb
}

func seedUser(t *testing.T, client *repo.Client, role string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetPublicID(strings.ToUpper(role[:2]) + "-" + uuid.NewString()[:8]).
		SetName("Salma Fawzy").
		SetEmail(uuid.NewString()[:8] + "@wasel.test").
		SetRoles([]string{role}).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed %s: %v", role, err)
	}
	return u
}

func seedCourierWithStats(t *testing.T, client *repo.Client, failures int) *repo.User {
	t.Helper()
	u := seedUser(t, client, model.RoleCourier)
	if _, err := client.CourierStats.Create().
		SetCourierID(u.ID).
		SetConsecutiveFailures(failures).
		Save(context.Background()); err != nil {
		t.Fatalf("seed courier stats: %v", err)
	}
	return u
}

type shipmentSeed struct {
	status          string
	paymentMethod   string
	packageValue    float64
	shippingFee     float64
	amountToCollect float64
	commission      float64
}

func seedShipment(t *testing.T, client *repo.Client, clientID uuid.UUID, courierID *uuid.UUID, seed shipmentSeed) *repo.Shipment {
	t.Helper()

	create := client.Shipment.Create().
		SetDisplayID("cai-260830-1-" + uuid.NewString()[:4]).
		SetClientID(clientID).
		SetRecipientName("Mona Adel").
		SetRecipientPhone("+201001234567").
		SetFromAddress(model.Address{Street: "12 Talaat Harb", City: "cairo", Zone: "downtown"}).
		SetToAddress(model.Address{Street: "4 El Horreya", City: "alexandria", Zone: "raml"}).
		SetPaymentMethod(entshipment.PaymentMethod(seed.paymentMethod)).
		SetPackageValue(seed.packageValue).
		SetShippingFee(seed.shippingFee).
		SetAmountToCollect(seed.amountToCollect).
		SetCourierCommission(seed.commission).
		SetStatus(entshipment.Status(seed.status)).
		SetStatusHistory([]model.StatusEvent{{Status: seed.status, At: time.Now()}})
	if courierID != nil {
		create.SetCourierID(*courierID)
	}

	sh, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("seed shipment: %v", err)
	}
	return sh
}

func storeCode(t *testing.T, rdb *goredis.Client, shipmentID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	if err := rdb.Set(ctx, redisKeyCode(shipmentID), codes.Hash(testCode), time.Minute).Err(); err != nil {
		t.Fatalf("store code: %v", err)
	}
	if err := rdb.Set(ctx, redisKeyAttempts(shipmentID), "0", time.Minute).Err(); err != nil {
		t.Fatalf("store attempts: %v", err)
	}
}

func countTransactions(t *testing.T, client *repo.Client) int {
	t.Helper()
	n, err := client.Transaction.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}

func sumEntries(t *testing.T, client *repo.Client, accountID uuid.UUID, entryType string) float64 {
	t.Helper()
	entries, err := client.Transaction.Query().
		Where(
			enttx.AccountID(accountID),
			enttx.TypeEQ(enttx.Type(entryType)),
		).
		All(context.Background())
	if err != nil {
		t.Fatalf("query entries: %v", err)
	}
	total := 0.0
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

func TestSendCodeStoresHashedCode(t *testing.T) {
	svc, client, rdb := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	sh := seedShipment(t, client, sender.ID, nil, shipmentSeed{
		status: model.StatusOutForDelivery, paymentMethod: model.PaymentCOD,
	})
	ctx := context.Background()

	codeID, err := svc.SendCode(ctx, sh.ID)
	if err != nil {
		t.Fatalf("send code: %v", err)
	}
	if codeID == "" {
		t.Error("empty code id")
	}

	stored, err := rdb.Get(ctx, redisKeyCode(sh.ID)).Result()
	if err != nil {
		t.Fatalf("read stored code: %v", err)
	}
	// Only the SHA-256 hash may touch Redis, never the plaintext digits.
	if len(stored) != 64 {
		t.Errorf("stored value length = %d, want 64 hex chars", len(stored))
	}
	if attempts, _ := rdb.Get(ctx, redisKeyAttempts(sh.ID)).Int(); attempts != 0 {
		t.Errorf("attempts = %d, want 0", attempts)
	}
}

func TestSendCodeRequiresOutForDelivery(t *testing.T) {
	svc, client, _ := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	sh := seedShipment(t, client, sender.ID, nil, shipmentSeed{
		status: model.StatusAssigned, paymentMethod: model.PaymentCOD,
	})

	if _, err := svc.SendCode(context.Background(), sh.ID); !errors.Is(err, ErrNotConfirmable) {
		t.Fatalf("got %v, want ErrNotConfirmable", err)
	}
}

func TestConfirmDeliversCOD(t *testing.T) {
	svc, client, rdb := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	courier := seedCourierWithStats(t, client, 2)
	sh := seedShipment(t, client, sender.ID, &courier.ID, shipmentSeed{
		status:        model.StatusOutForDelivery,
		paymentMethod: model.PaymentCOD,
		packageValue:  100,
		shippingFee:   20,
		commission:    10,
	})
	ctx := context.Background()
	storeCode(t, rdb, sh.ID)

	delivered, err := svc.Confirm(ctx, sh.ID, testCode)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if string(delivered.Status) != model.StatusDelivered {
		t.Errorf("status = %s, want delivered", delivered.Status)
	}
	if delivered.DeliveredAt == nil {
		t.Error("delivered_at not set")
	}
	last := delivered.StatusHistory[len(delivered.StatusHistory)-1]
	if last.Status != model.StatusDelivered {
		t.Errorf("last history status = %s, want delivered", last.Status)
	}

	// COD books the collected value and the fee as separate entries.
	if got := sumEntries(t, client, sender.ID, ledger.TypeDeposit); got != 100 {
		t.Errorf("client deposits = %v, want 100", got)
	}
	if got := sumEntries(t, client, sender.ID, ledger.TypePayment); got != -20 {
		t.Errorf("client payments = %v, want -20", got)
	}
	if got := sumEntries(t, client, courier.ID, ledger.TypeCommission); got != 10 {
		t.Errorf("courier commission = %v, want 10", got)
	}

	stats, err := client.CourierStats.Query().Where(entcs.CourierID(courier.ID)).Only(ctx)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.ConsecutiveFailures != 0 {
		t.Errorf("consecutive failures = %d, want 0", stats.ConsecutiveFailures)
	}
	if stats.CurrentBalance != 10 {
		t.Errorf("cached courier balance = %v, want 10", stats.CurrentBalance)
	}

	freshClient, err := client.User.Get(ctx, sender.ID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if freshClient.WalletBalance != 80 {
		t.Errorf("cached client balance = %v, want 80", freshClient.WalletBalance)
	}
}

func TestConfirmDeliversTransfer(t *testing.T) {
	svc, client, rdb := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	sh := seedShipment(t, client, sender.ID, nil, shipmentSeed{
		status:          model.StatusOutForDelivery,
		paymentMethod:   model.PaymentTransfer,
		amountToCollect: 50,
	})
	storeCode(t, rdb, sh.ID)

	if _, err := svc.Confirm(context.Background(), sh.ID, testCode); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got := sumEntries(t, client, sender.ID, ledger.TypeDeposit); got != 50 {
		t.Errorf("client deposits = %v, want 50", got)
	}
	if got := countTransactions(t, client); got != 1 {
		t.Errorf("transaction count = %d, want 1", got)
	}
}

func TestConfirmPaysReferralBonus(t *testing.T) {
	svc, client, rdb := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	referrer := seedUser(t, client, model.RoleClient)

	courier := seedUser(t, client, model.RoleCourier)
	if err := client.User.UpdateOneID(courier.ID).SetReferredBy(referrer.ID).Exec(context.Background()); err != nil {
		t.Fatalf("set referrer: %v", err)
	}
	if _, err := client.CourierStats.Create().SetCourierID(courier.ID).Save(context.Background()); err != nil {
		t.Fatalf("seed courier stats: %v", err)
	}

	sh := seedShipment(t, client, sender.ID, &courier.ID, shipmentSeed{
		status:        model.StatusOutForDelivery,
		paymentMethod: model.PaymentTransfer,
		commission:    10,
	})
	storeCode(t, rdb, sh.ID)

	if _, err := svc.Confirm(context.Background(), sh.ID, testCode); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got := sumEntries(t, client, referrer.ID, ledger.TypeReferralBonus); got != pricing.ReferralBonus {
		t.Errorf("referral bonus = %v, want %v", got, pricing.ReferralBonus)
	}
}

func TestConfirmIsSingleUse(t *testing.T) {
	svc, client, rdb := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	courier := seedCourierWithStats(t, client, 0)
	sh := seedShipment(t, client, sender.ID, &courier.ID, shipmentSeed{
		status:        model.StatusOutForDelivery,
		paymentMethod: model.PaymentCOD,
		packageValue:  100,
		shippingFee:   20,
		commission:    10,
	})
	ctx := context.Background()
	storeCode(t, rdb, sh.ID)

	if _, err := svc.Confirm(ctx, sh.ID, testCode); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	entriesAfterFirst := countTransactions(t, client)

	// The code is deleted on success, so a straight replay misses it.
	if _, err := svc.Confirm(ctx, sh.ID, testCode); !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("replay: got %v, want ErrCodeExpired", err)
	}

	// Even with a fresh code the delivered status blocks a second run,
	// and no ledger entry is booked twice.
	storeCode(t, rdb, sh.ID)
	if _, err := svc.Confirm(ctx, sh.ID, testCode); !errors.Is(err, ErrNotConfirmable) {
		t.Fatalf("re-issued code: got %v, want ErrNotConfirmable", err)
	}
	if got := countTransactions(t, client); got != entriesAfterFirst {
		t.Errorf("transaction count = %d, want %d", got, entriesAfterFirst)
	}
}

func TestConfirmWrongCodeCountsAttempts(t *testing.T) {
	svc, client, rdb := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	sh := seedShipment(t, client, sender.ID, nil, shipmentSeed{
		status: model.StatusOutForDelivery, paymentMethod: model.PaymentCOD,
	})
	ctx := context.Background()
	storeCode(t, rdb, sh.ID)

	for i := 0; i < 3; i++ {
		if _, err := svc.Confirm(ctx, sh.ID, "000000"); !errors.Is(err, ErrCodeInvalid) {
			t.Fatalf("attempt %d: got %v, want ErrCodeInvalid", i+1, err)
		}
	}

	// The cap blocks further tries even with the right code.
	if _, err := svc.Confirm(ctx, sh.ID, testCode); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("after cap: got %v, want ErrTooManyAttempts", err)
	}
	if got := countTransactions(t, client); got != 0 {
		t.Errorf("transaction count = %d, want 0", got)
	}
}

func TestConfirmWithoutIssuedCode(t *testing.T) {
	svc, client, _ := newTestService(t)
	sender := seedUser(t, client, model.RoleClient)
	sh := seedShipment(t, client, sender.ID, nil, shipmentSeed{
		status: model.StatusOutForDelivery, paymentMethod: model.PaymentCOD,
	})

	if _, err := svc.Confirm(context.Background(), sh.ID, testCode); !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("got %v, want ErrCodeExpired", err)
	}
}
