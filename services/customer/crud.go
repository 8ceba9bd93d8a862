package customer

import (
	"context"
	"sort"
	"strings"

	"dairy/models"
	"dairy/utils"

	"go.uber.org/zap"
)

func (s *DefaultCustomerService) CreateCustomer(ctx context.Context, session models.Session, req models.CustomerRequest) (*models.Customer, error) {
	if req.FullName == nil || strings.TrimSpace(*req.FullName) == "" {
		return nil, utils.NewValidationError("fullName is required")
	}
	if req.Shift == nil {
		return nil, utils.NewValidationError("shift is required")
	}

	c := models.Customer{AccountID: session.AccountID}
	if err := applyRequest(&c, req); err != nil {
		return nil, err
	}

	id, err := s.Repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Customer created",
		zap.String("accountId", session.AccountID),
		zap.String("customerId", id),
		zap.String("shift", c.Shift.String()))
	return s.Repo.GetByID(ctx, session.AccountID, id)
}

func (s *DefaultCustomerService) GetCustomer(ctx context.Context, session models.Session, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, session.AccountID, id)
}

func (s *DefaultCustomerService) ListCustomers(ctx context.Context, session models.Session, shift models.Shift) ([]models.Customer, error) {
	if !shift.Valid() {
		return nil, utils.NewValidationError("invalid shift %q", shift)
	}
	customers, err := s.Repo.FindByShift(ctx, session.AccountID, shift)
	if err != nil {
		return nil, err
	}
	sortByDisplayName(customers)
	return customers, nil
}

func (s *DefaultCustomerService) ListAll(ctx context.Context, session models.Session) ([]models.Customer, error) {
	customers, err := s.Repo.FindByAccount(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}
	sortByDisplayName(customers)
	return customers, nil
}

func (s *DefaultCustomerService) UpdateCustomer(ctx context.Context, session models.Session, id string, req models.CustomerRequest) (*models.Customer, error) {
	c, err := s.Repo.GetByID(ctx, session.AccountID, id)
	if err != nil {
		return nil, err
	}
	if err := applyRequest(c, req); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, *c); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, session.AccountID, id)
}

// DeleteCustomer removes the registry row only. Entries keep their captured
// name and rate and simply drop out of the overview.
func (s *DefaultCustomerService) DeleteCustomer(ctx context.Context, session models.Session, id string) error {
	return s.Repo.DeleteByID(ctx, session.AccountID, id)
}

func (s *DefaultCustomerService) Resolve(ctx context.Context, session models.Session, shift models.Shift, ref models.CustomerRef) (*models.Customer, error) {
	if ref.IsZero() {
		return nil, utils.NewValidationError("customerId or customerName is required")
	}
	if ref.ID != "" {
		c, err := s.Repo.GetByID(ctx, session.AccountID, ref.ID)
		if err != nil {
			return nil, err
		}
		if c.Shift != shift {
			return nil, utils.NewNotFoundError("customer in "+shift.String()+" shift", ref.ID)
		}
		return c, nil
	}
	return s.resolveByName(ctx, session, shift, strings.TrimSpace(ref.Name))
}

// resolveByName is the compatibility path for clients that key entries by
// display name. Two customers sharing a name cannot be told apart here.
func (s *DefaultCustomerService) resolveByName(ctx context.Context, session models.Session, shift models.Shift, name string) (*models.Customer, error) {
	roster, err := s.Repo.FindByShift(ctx, session.AccountID, shift)
	if err != nil {
		return nil, err
	}
	var matches []models.Customer
	for _, c := range roster {
		if c.MatchesName(name) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, utils.NewNotFoundError("customer in "+shift.String()+" shift", name)
	case 1:
		return &matches[0], nil
	default:
		return nil, utils.NewConflictError("customer name %q is ambiguous in %s shift; use customerId", name, shift)
	}
}

func applyRequest(c *models.Customer, req models.CustomerRequest) error {
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return utils.NewValidationError("fullName cannot be empty")
		}
		c.FullName = name
	}
	if req.Nickname != nil {
		nick := strings.TrimSpace(*req.Nickname)
		if nick == "" {
			c.Nickname = nil
		} else {
			c.Nickname = &nick
		}
	}
	if req.PricePerLitre != nil {
		if *req.PricePerLitre < 0 {
			return utils.NewValidationError("pricePerLitre must not be negative")
		}
		price := *req.PricePerLitre
		c.PricePerLitre = &price
	}
	if req.Shift != nil {
		shift, ok := models.ParseShift(*req.Shift)
		if !ok {
			return utils.NewValidationError("invalid shift %q", *req.Shift)
		}
		c.Shift = shift
	}
	return nil
}

func sortByDisplayName(customers []models.Customer) {
	sort.SliceStable(customers, func(i, j int) bool {
		a, b := customers[i].DisplayName(), customers[j].DisplayName()
		if a != b {
			return a < b
		}
		return customers[i].ID < customers[j].ID
	})
}
