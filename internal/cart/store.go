package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/famoussince/storefront/storage/db"
)

// Store persists carts keyed by session ID, one row per shopper. The
// session cookie value is the row key.
type Store struct {
	queries *db.Queries
}

func NewStore(queries *db.Queries) *Store {
	return &Store{queries: queries}
}

// Load hydrates the cart for a session, returning an empty cart when the
// session has no row yet.
func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	c := &Cart{}

	row, err := s.queries.GetCartSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}

	if err := c.Unmarshal(row.Items); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the cart back, creating the session row on first use.
func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	items, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := s.queries.UpdateCartItems(ctx, db.UpdateCartItemsParams{
		Items: items,
		ID:    sessionID,
	}); err != nil {
		return fmt.Errorf("failed to update cart session: %w", err)
	}

	// UPDATE on a missing row is a silent no-op in SQLite, so probe and
	// insert when this session has never saved before.
	if _, err := s.queries.GetCartSession(ctx, sessionID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to look up cart session: %w", err)
		}
		if _, err := s.queries.CreateCartSession(ctx, db.CreateCartSessionParams{
			ID:    sessionID,
			Items: items,
		}); err != nil {
			return fmt.Errorf("failed to create cart session: %w", err)
		}
	}
	return nil
}

// Delete drops the session row entirely, used after a completed checkout.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.queries.DeleteCartSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete cart session: %w", err)
	}
	return nil
}
