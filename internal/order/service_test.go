package order

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sipstation/internal/catalog"
	"sipstation/internal/pricing"
)

func testCatalog(coffeePrice float64) *catalog.Catalog {
	return catalog.New(
		map[string]catalog.Beverage{
			"coffee": {ID: "coffee", Category: "coffee", Name: "Classic Coffee", Price: decimal.NewFromFloat(coffeePrice), Calories: 5},
			"latte":  {ID: "latte", Category: "coffee", Name: "Latte", Price: decimal.NewFromFloat(22.0), Calories: 120},
		},
		map[string]catalog.Condiment{
			"milk": {ID: "milk", Category: "dairy", Name: "Milk", Price: decimal.NewFromFloat(3.0), Calories: 60},
		},
	)
}

func mustCompose(t *testing.T, cat *catalog.Catalog, beverage string, selections []pricing.Selection) *pricing.Composite {
	t.Helper()
	composite, err := pricing.Compose(cat, beverage, selections)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return composite
}

func TestCreateOrderStartsPending(t *testing.T) {
	svc := NewService()
	o := svc.Create(mustCompose(t, testCatalog(18.0), "coffee", nil))

	if o.Status != StatusPending {
		t.Fatalf("new orders must start pending, got %s", o.Status)
	}
	if o.ID == "" {
		t.Fatalf("order id must be set")
	}
	if !o.CreatedAt.Equal(o.UpdatedAt) {
		t.Fatalf("createdAt and updatedAt must match on creation")
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewService()
	created := svc.Create(mustCompose(t, testCatalog(18.0), "coffee", []pricing.Selection{
		{ID: "milk", Quantity: 2},
	}))

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Total.Equal(decimal.NewFromFloat(24.0)) {
		t.Fatalf("expected total 24, got %s", got.Total)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(got.Items))
	}
}

func TestGetUnknownOrder(t *testing.T) {
	svc := NewService()
	if _, err := svc.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderPricesAreFrozenAtCreation(t *testing.T) {
	svc := NewService()
	created := svc.Create(mustCompose(t, testCatalog(18.0), "coffee", []pricing.Selection{
		{ID: "milk", Quantity: 1},
	}))

	// A catalog reload with new prices must not touch the stored order.
	reloaded := testCatalog(99.0)
	_ = svc.Create(mustCompose(t, reloaded, "coffee", nil))

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Items[0].Price.Equal(decimal.NewFromFloat(18.0)) {
		t.Fatalf("frozen beverage price changed: %s", got.Items[0].Price)
	}
	if !got.Total.Equal(decimal.NewFromFloat(21.0)) {
		t.Fatalf("frozen total changed: %s", got.Total)
	}
}

func TestHistoryCapacityEvictsOldest(t *testing.T) {
	svc := NewService()
	cat := testCatalog(18.0)

	ids := make([]string, 0, HistoryCapacity+1)
	for i := 0; i < HistoryCapacity+1; i++ {
		o := svc.Create(mustCompose(t, cat, "coffee", nil))
		ids = append(ids, o.ID)
	}

	all := svc.History(HistoryCapacity + 5)
	if len(all) != HistoryCapacity {
		t.Fatalf("history must hold exactly %d orders, got %d", HistoryCapacity, len(all))
	}

	// The first order is the evicted one.
	if _, err := svc.Get(ids[0]); !errors.Is(err, ErrNotFound) {
		t.Fatalf("oldest order must be evicted, got %v", err)
	}
	if _, err := svc.Get(ids[1]); err != nil {
		t.Fatalf("second order must survive eviction: %v", err)
	}
}

func TestHistoryMostRecentFirstWithDefaultLimit(t *testing.T) {
	svc := NewService()
	cat := testCatalog(18.0)

	var last string
	for i := 0; i < 8; i++ {
		last = svc.Create(mustCompose(t, cat, "latte", nil)).ID
	}

	recent := svc.History(0)
	if len(recent) != DefaultHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultHistoryLimit, len(recent))
	}
	if recent[0].ID != last {
		t.Fatalf("history must be most-recent-first")
	}
}

func TestHistoryReturnsCopies(t *testing.T) {
	svc := NewService()
	created := svc.Create(mustCompose(t, testCatalog(18.0), "coffee", nil))

	recent := svc.History(1)
	recent[0].Status = StatusCancelled
	recent[0].Items[0].Quantity = 99

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusPending || got.Items[0].Quantity != 1 {
		t.Fatalf("mutating a history result must not touch the stored order")
	}
}

func TestUpdateStatusHappyPath(t *testing.T) {
	svc := NewService()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	o := svc.Create(mustCompose(t, testCatalog(18.0), "coffee", nil))

	updated, err := svc.UpdateStatus(o.ID, "processing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusProcessing {
		t.Fatalf("expected processing, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("updatedAt must advance past createdAt")
	}

	done, err := svc.UpdateStatus(o.ID, "completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", done.Status)
	}
}

func TestUpdateStatusCancellation(t *testing.T) {
	svc := NewService()
	cat := testCatalog(18.0)

	fromPending := svc.Create(mustCompose(t, cat, "coffee", nil))
	if _, err := svc.UpdateStatus(fromPending.ID, "cancelled"); err != nil {
		t.Fatalf("pending order must be cancellable: %v", err)
	}

	fromProcessing := svc.Create(mustCompose(t, cat, "coffee", nil))
	if _, err := svc.UpdateStatus(fromProcessing.ID, "processing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateStatus(fromProcessing.ID, "cancelled"); err != nil {
		t.Fatalf("processing order must be cancellable: %v", err)
	}
}

func TestUpdateStatusTerminalStatesAreFinal(t *testing.T) {
	svc := NewService()
	cat := testCatalog(18.0)

	for _, terminal := range []string{"completed", "cancelled"} {
		o := svc.Create(mustCompose(t, cat, "coffee", nil))
		if terminal == "completed" {
			if _, err := svc.UpdateStatus(o.ID, "processing"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if _, err := svc.UpdateStatus(o.ID, terminal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, next := range []string{"pending", "processing", "completed", "cancelled"} {
			if _, err := svc.UpdateStatus(o.ID, next); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", terminal, next, err)
			}
		}
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewService()
	o := svc.Create(mustCompose(t, testCatalog(18.0), "coffee", nil))

	if _, err := svc.UpdateStatus(o.ID, "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := NewService()
	if _, err := svc.UpdateStatus("nope", "processing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentCreatesStayBounded(t *testing.T) {
	svc := NewService()
	cat := testCatalog(18.0)
	composite := mustCompose(t, cat, "coffee", nil)

	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			for i := 0; i < 25; i++ {
				svc.Create(composite)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}

	if got := len(svc.History(1000)); got != HistoryCapacity {
		t.Fatalf("history overran its capacity: %d", got)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "completed", "cancelled"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Fatalf("%s must parse: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "done", "PENDING"} {
		if _, err := ParseStatus(invalid); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("%q: expected ErrInvalidStatus, got %v", invalid, err)
		}
	}
}

func TestStatusMachineEdges(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusProcessing, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			if got := tc.from.CanTransition(tc.to); got != tc.ok {
				t.Fatalf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.ok)
			}
		})
	}
}
