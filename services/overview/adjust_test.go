package overview

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	customerRepo "dairy/database/repository/customer"
	entryRepo "dairy/database/repository/entry"
	"dairy/models"
	"dairy/services/customer"
	"dairy/services/entry"
	"dairy/utils"
)

type fixture struct {
	session   models.Session
	customers *customer.DefaultCustomerService
	entries   *entry.DefaultEntryService
	svc       *DefaultOverviewService
	locker    *MemoryCellLocker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	customers := &customer.DefaultCustomerService{Repo: customerRepo.NewMemoryCustomerRepo()}
	entries := &entry.DefaultEntryService{Repo: entryRepo.NewMemoryEntryRepo(), Customers: customers}
	locker := NewMemoryCellLocker(200 * time.Millisecond)
	return &fixture{
		session:   models.Session{AccountID: "acct-1"},
		customers: customers,
		entries:   entries,
		svc:       NewOverviewService(customers, entries, locker),
		locker:    locker,
	}
}

func (f *fixture) addCustomer(t *testing.T, name string, price *float64) *models.Customer {
	t.Helper()
	shift := "Morning"
	c, err := f.customers.CreateCustomer(context.Background(), f.session, models.CustomerRequest{
		FullName:      &name,
		PricePerLitre: price,
		Shift:         &shift,
	})
	if err != nil {
		t.Fatalf("create customer %s: %v", name, err)
	}
	return c
}

func price(v float64) *float64 { return &v }

func adjust(customerID string, day int, delta float64, reset bool) models.AdjustRequest {
	return models.AdjustRequest{
		Shift:      "Morning",
		Month:      2,
		Year:       2024,
		Day:        day,
		CustomerID: customerID,
		Delta:      delta,
		Reset:      reset,
	}
}

func TestAdjustCellUsesDefaultRate(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(25))

	snap, err := f.svc.AdjustCell(context.Background(), f.session, adjust(c.ID, 10, 1, false))
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	cell, ok := snap.Cell(10, c.ID)
	if !ok {
		t.Fatalf("expected cell after adjust")
	}
	if cell.Litres != 1 || cell.Rate != 25 || cell.Amount != 25 {
		t.Fatalf("expected litres 1 rate 25 amount 25, got %+v", cell)
	}
}

func TestAdjustCellIsAdditive(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(40))
	ctx := context.Background()

	if _, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 3, 0.5, false)); err != nil {
		t.Fatalf("first adjust: %v", err)
	}
	snap, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 3, 0.25, false))
	if err != nil {
		t.Fatalf("second adjust: %v", err)
	}
	cell, _ := snap.Cell(3, c.ID)
	if cell.Litres != 0.75 {
		t.Fatalf("expected 0.75 litres, got %v", cell.Litres)
	}
	if cell.Amount != 30 {
		t.Fatalf("expected amount 30, got %v", cell.Amount)
	}
}

func TestAdjustCellResetIsIdempotent(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(30))
	ctx := context.Background()

	if _, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 5, 2, false)); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	first, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 5, 0, true))
	if err != nil {
		t.Fatalf("first reset: %v", err)
	}
	second, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 5, 0, true))
	if err != nil {
		t.Fatalf("second reset: %v", err)
	}

	a, _ := first.Cell(5, c.ID)
	b, _ := second.Cell(5, c.ID)
	if a != b {
		t.Fatalf("reset not idempotent: %+v vs %+v", a, b)
	}
	if b.Litres != 0 || b.Amount != 0 {
		t.Fatalf("expected zeroed cell, got %+v", b)
	}
	if second.TotalLitresPerCustomer[c.ID] != 0 {
		t.Fatalf("expected zero total after reset, got %v", second.TotalLitresPerCustomer[c.ID])
	}
}

func TestAdjustCellRepricesAtCurrentDefault(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(25))
	ctx := context.Background()

	if _, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 7, 1, false)); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if _, err := f.customers.UpdateCustomer(ctx, f.session, c.ID, models.CustomerRequest{PricePerLitre: price(30)}); err != nil {
		t.Fatalf("update price: %v", err)
	}
	snap, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 7, 1, false))
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	cell, _ := snap.Cell(7, c.ID)
	if cell.Litres != 2 || cell.Rate != 30 || cell.Amount != 60 {
		t.Fatalf("expected 2 litres at 30, got %+v", cell)
	}
}

func TestAdjustCellRateFallbacks(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Bala", nil)
	ctx := context.Background()

	_, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 1, 1, false))
	if !utils.IsValidation(err) {
		t.Fatalf("expected validation error without any rate, got %v", err)
	}

	snap, err := f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 1, 0, true))
	if err != nil {
		t.Fatalf("reset without rate: %v", err)
	}
	if cell, _ := snap.Cell(1, c.ID); cell.Rate != 0 || cell.Litres != 0 {
		t.Fatalf("expected zero cell, got %+v", cell)
	}

	if _, err := f.entries.UpsertEntry(ctx, f.session, models.CustomerRef{ID: c.ID}, models.ShiftMorning, "2024-02-02", 1, 22); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	snap, err = f.svc.AdjustCell(ctx, f.session, adjust(c.ID, 2, 1, false))
	if err != nil {
		t.Fatalf("adjust with stored rate: %v", err)
	}
	if cell, _ := snap.Cell(2, c.ID); cell.Litres != 2 || cell.Rate != 22 || cell.Amount != 44 {
		t.Fatalf("expected stored rate to be reused, got %+v", cell)
	}
}

func TestAdjustCellValidation(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(25))
	ctx := context.Background()

	cases := map[string]models.AdjustRequest{
		"negative delta": adjust(c.ID, 1, -1, false),
		"nan delta":      adjust(c.ID, 1, math.NaN(), false),
		"day 30 in feb":  adjust(c.ID, 30, 1, false),
		"bad shift":      {Shift: "Evening", Month: 2, Year: 2024, Day: 1, CustomerID: c.ID, Delta: 1},
		"bad month":      {Shift: "Morning", Month: 13, Year: 2024, Day: 1, CustomerID: c.ID, Delta: 1},
		"no customer":    {Shift: "Morning", Month: 2, Year: 2024, Day: 1, Delta: 1},
	}
	for name, req := range cases {
		if _, err := f.svc.AdjustCell(ctx, f.session, req); !utils.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}

	if _, err := f.svc.AdjustCell(ctx, f.session, adjust("missing", 1, 1, false)); !utils.IsNotFound(err) {
		t.Errorf("expected not found for unknown customer, got %v", err)
	}
}

func TestAdjustCellByAmbiguousNameConflicts(t *testing.T) {
	f := newFixture(t)
	f.addCustomer(t, "Sita", price(25))
	f.addCustomer(t, "Sita", price(30))

	req := adjust("", 1, 1, false)
	req.CustomerName = "Sita"
	if _, err := f.svc.AdjustCell(context.Background(), f.session, req); !utils.IsConflict(err) {
		t.Fatalf("expected conflict for ambiguous name, got %v", err)
	}
}

func TestAdjustCellBusyCellConflicts(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(25))
	f.locker.Timeout = 20 * time.Millisecond

	unlock, err := f.locker.Lock(context.Background(), CellKey(c.ID, models.ShiftMorning, "2024-02-10"))
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer unlock()

	if _, err := f.svc.AdjustCell(context.Background(), f.session, adjust(c.ID, 10, 1, false)); !utils.IsConflict(err) {
		t.Fatalf("expected conflict while cell is locked, got %v", err)
	}
}

func TestAdjustCellConcurrentAddsAreNotLost(t *testing.T) {
	f := newFixture(t)
	c := f.addCustomer(t, "Asha", price(20))
	f.locker.Timeout = 5 * time.Second

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.AdjustCell(context.Background(), f.session, adjust(c.ID, 15, 0.5, false)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent adjust: %v", err)
	}

	snap, err := f.svc.BuildOverview(context.Background(), f.session, models.ShiftMorning, 2, 2024)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cell, _ := snap.Cell(15, c.ID); cell.Litres != 10 {
		t.Fatalf("expected 10 litres after %d adds of 0.5, got %v", workers, cell.Litres)
	}
	if f.locker.Held() != 0 {
		t.Fatalf("expected all cell locks released, %d held", f.locker.Held())
	}
}

func TestBuildOverviewAfterCustomerDeleted(t *testing.T) {
	f := newFixture(t)
	keep := f.addCustomer(t, "Asha", price(25))
	drop := f.addCustomer(t, "Bala", price(25))
	ctx := context.Background()

	for _, id := range []string{keep.ID, drop.ID} {
		if _, err := f.svc.AdjustCell(ctx, f.session, adjust(id, 4, 1, false)); err != nil {
			t.Fatalf("adjust: %v", err)
		}
	}
	if err := f.customers.DeleteCustomer(ctx, f.session, drop.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	snap, err := f.svc.BuildOverview(ctx, f.session, models.ShiftMorning, 2, 2024)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(snap.Customers) != 1 || snap.Customers[0].ID != keep.ID {
		t.Fatalf("expected only %s on roster, got %+v", keep.ID, snap.Customers)
	}
	if _, ok := snap.Cell(4, drop.ID); ok {
		t.Fatalf("deleted customer's entries must not appear")
	}
}
