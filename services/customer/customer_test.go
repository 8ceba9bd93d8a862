package customer

import (
	"context"
	"testing"

	customerRepo "dairy/database/repository/customer"
	"dairy/models"
	"dairy/utils"
)

func ptr[T any](v T) *T { return &v }

func newService() (*DefaultCustomerService, models.Session) {
	return &DefaultCustomerService{Repo: customerRepo.NewMemoryCustomerRepo()}, models.Session{AccountID: "acct-1"}
}

func mustCreate(t *testing.T, s *DefaultCustomerService, session models.Session, req models.CustomerRequest) *models.Customer {
	t.Helper()
	c, err := s.CreateCustomer(context.Background(), session, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return c
}

func TestCreateCustomerValidation(t *testing.T) {
	s, session := newService()
	cases := map[string]models.CustomerRequest{
		"missing name":   {Shift: ptr("Morning")},
		"blank name":     {FullName: ptr("   "), Shift: ptr("Morning")},
		"missing shift":  {FullName: ptr("Asha")},
		"bad shift":      {FullName: ptr("Asha"), Shift: ptr("Evening")},
		"negative price": {FullName: ptr("Asha"), Shift: ptr("Morning"), PricePerLitre: ptr(-1.0)},
	}
	for name, req := range cases {
		if _, err := s.CreateCustomer(context.Background(), session, req); !utils.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestListCustomersSortedByDisplayName(t *testing.T) {
	s, session := newService()
	mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Zara"), Shift: ptr("Morning")})
	mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Asha"), Shift: ptr("morning")})
	mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Mira"), Shift: ptr("Night")})
	mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Bala"), Shift: ptr("Morning")})

	roster, err := s.ListCustomers(context.Background(), session, models.ShiftMorning)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, c := range roster {
		names = append(names, c.DisplayName())
	}
	want := []string{"Asha", "Bala", "Zara"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	other, err := s.ListCustomers(context.Background(), models.Session{AccountID: "acct-2"}, models.ShiftMorning)
	if err != nil {
		t.Fatalf("list other account: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected accounts to be isolated, got %d customers", len(other))
	}
}

func TestUpdateCustomerPartial(t *testing.T) {
	s, session := newService()
	c := mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Asha"), Nickname: ptr("A"), Shift: ptr("Morning"), PricePerLitre: ptr(25.0)})

	updated, err := s.UpdateCustomer(context.Background(), session, c.ID, models.CustomerRequest{PricePerLitre: ptr(30.0)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Asha" || updated.Nickname == nil || *updated.Nickname != "A" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.PricePerLitre == nil || *updated.PricePerLitre != 30 {
		t.Fatalf("expected price 30, got %v", updated.PricePerLitre)
	}

	cleared, err := s.UpdateCustomer(context.Background(), session, c.ID, models.CustomerRequest{Nickname: ptr("")})
	if err != nil {
		t.Fatalf("clear nickname: %v", err)
	}
	if cleared.Nickname != nil {
		t.Fatalf("expected nickname cleared, got %q", *cleared.Nickname)
	}

	if _, err := s.UpdateCustomer(context.Background(), session, "missing", models.CustomerRequest{}); !utils.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	s, session := newService()
	ctx := context.Background()
	asha := mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Asha Rao"), Nickname: ptr("Asha"), Shift: ptr("Morning")})
	mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Sita"), Shift: ptr("Morning")})
	mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Sita"), Shift: ptr("Morning")})

	got, err := s.Resolve(ctx, session, models.ShiftMorning, models.CustomerRef{Name: "Asha"})
	if err != nil || got.ID != asha.ID {
		t.Fatalf("expected nickname to resolve to %s, got %v, %v", asha.ID, got, err)
	}
	got, err = s.Resolve(ctx, session, models.ShiftMorning, models.CustomerRef{ID: asha.ID, Name: "ignored"})
	if err != nil || got.ID != asha.ID {
		t.Fatalf("expected id lookup to win, got %v, %v", got, err)
	}

	if _, err := s.Resolve(ctx, session, models.ShiftMorning, models.CustomerRef{Name: "Sita"}); !utils.IsConflict(err) {
		t.Fatalf("expected conflict for ambiguous name, got %v", err)
	}
	if _, err := s.Resolve(ctx, session, models.ShiftMorning, models.CustomerRef{Name: "Nobody"}); !utils.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.Resolve(ctx, session, models.ShiftNight, models.CustomerRef{ID: asha.ID}); !utils.IsNotFound(err) {
		t.Fatalf("expected not found on another shift, got %v", err)
	}
	if _, err := s.Resolve(ctx, session, models.ShiftMorning, models.CustomerRef{}); !utils.IsValidation(err) {
		t.Fatalf("expected validation error for empty ref, got %v", err)
	}
}

func TestDeleteCustomer(t *testing.T) {
	s, session := newService()
	c := mustCreate(t, s, session, models.CustomerRequest{FullName: ptr("Asha"), Shift: ptr("Morning")})

	if err := s.DeleteCustomer(context.Background(), models.Session{AccountID: "acct-2"}, c.ID); !utils.IsNotFound(err) {
		t.Fatalf("expected not found for another account, got %v", err)
	}
	if err := s.DeleteCustomer(context.Background(), session, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetCustomer(context.Background(), session, c.ID); !utils.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
