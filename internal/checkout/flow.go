package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/famoussince/storefront/storage/db"
)

// Checkout runs as a three step wizard. Steps complete in order; moving
// back never loses entered values.
const (
	StepContact  = 1
	StepShipping = 2
	StepPayment  = 3
)

var (
	ErrStepLocked  = errors.New("checkout: earlier steps are incomplete")
	ErrInvalidStep = errors.New("checkout: unknown step")
)

// ValidationError reports the fields missing from a step submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "checkout: missing required fields: " + strings.Join(e.Fields, ", ")
}

// Contact is step one.
type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// Address is the shipping destination collected in step two.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// State is the wizard's accumulated answers, serialized into the cart
// session between requests.
type State struct {
	Step           int     `json:"step"`
	Contact        Contact `json:"contact"`
	Address        Address `json:"address"`
	ShippingMethod string  `json:"shipping_method,omitempty"`
	DiscountCode   string  `json:"discount_code,omitempty"`
}

// NewState starts a fresh wizard at the contact step.
func NewState() *State {
	return &State{Step: StepContact}
}

func (c Contact) validate() error {
	var missing []string
	if strings.TrimSpace(c.Email) == "" || !strings.Contains(c.Email, "@") {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(c.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (a Address) validate() error {
	var missing []string
	if strings.TrimSpace(a.Line1) == "" {
		missing = append(missing, "line1")
	}
	if strings.TrimSpace(a.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(a.State) == "" {
		missing = append(missing, "state")
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		missing = append(missing, "postal_code")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// SubmitContact completes step one and advances to shipping.
func (s *State) SubmitContact(c Contact) error {
	if err := c.validate(); err != nil {
		return err
	}
	s.Contact = c
	if s.Step < StepShipping {
		s.Step = StepShipping
	}
	return nil
}

// SubmitShipping completes step two. Contact must already be done.
func (s *State) SubmitShipping(a Address, method string) error {
	if s.Step < StepShipping {
		return ErrStepLocked
	}
	if err := a.validate(); err != nil {
		return err
	}
	if method != ShippingStandard && method != ShippingExpress {
		return &ValidationError{Fields: []string{"shipping_method"}}
	}
	s.Address = a
	s.ShippingMethod = method
	if s.Step < StepPayment {
		s.Step = StepPayment
	}
	return nil
}

// ReadyForPayment reports whether both earlier steps are complete.
func (s *State) ReadyForPayment() bool {
	return s.Step >= StepPayment
}

// GoTo moves back to an already reached step without discarding answers.
// Jumping forward past incomplete steps is refused.
func (s *State) GoTo(step int) error {
	if step < StepContact || step > StepPayment {
		return ErrInvalidStep
	}
	if step > s.Step {
		return ErrStepLocked
	}
	return nil
}

// FlowStore persists wizard state alongside the shopper's cart session.
type FlowStore struct {
	queries *db.Queries
}

func NewFlowStore(queries *db.Queries) *FlowStore {
	return &FlowStore{queries: queries}
}

// Load returns the saved wizard state for a session, or a fresh one.
func (f *FlowStore) Load(ctx context.Context, sessionID string) (*State, error) {
	row, err := f.queries.GetCartSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("failed to load checkout state: %w", err)
	}
	if !row.CheckoutState.Valid || row.CheckoutState.String == "" {
		return NewState(), nil
	}

	var state State
	if err := json.Unmarshal([]byte(row.CheckoutState.String), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout state: %w", err)
	}
	if state.Step < StepContact {
		state.Step = StepContact
	}
	return &state, nil
}

// Save writes the wizard state back onto the cart session row, creating
// the row when the shopper reached checkout before ever saving a cart.
func (f *FlowStore) Save(ctx context.Context, sessionID string, s *State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout state: %w", err)
	}

	if _, err := f.queries.GetCartSession(ctx, sessionID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to look up cart session: %w", err)
		}
		if _, err := f.queries.CreateCartSession(ctx, db.CreateCartSessionParams{
			ID:    sessionID,
			Items: "[]",
		}); err != nil {
			return fmt.Errorf("failed to create cart session: %w", err)
		}
	}

	if err := f.queries.UpdateCheckoutState(ctx, db.UpdateCheckoutStateParams{
		CheckoutState: sql.NullString{String: string(data), Valid: true},
		ID:            sessionID,
	}); err != nil {
		return fmt.Errorf("failed to save checkout state: %w", err)
	}
	return nil
}

// Clear wipes the wizard state after an order completes.
func (f *FlowStore) Clear(ctx context.Context, sessionID string) error {
	if err := f.queries.UpdateCheckoutState(ctx, db.UpdateCheckoutStateParams{
		CheckoutState: sql.NullString{},
		ID:            sessionID,
	}); err != nil {
		return fmt.Errorf("failed to clear checkout state: %w", err)
	}
	return nil
}
