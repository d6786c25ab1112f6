package homepage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/famoussince/storefront/storage/db"
)

// Store reads and reconciles the persisted slot pins.
type Store struct {
	database *sql.DB
	queries  *db.Queries
}

func NewStore(database *sql.DB, queries *db.Queries) *Store {
	return &Store{database: database, queries: queries}
}

// Pins returns the saved slot assignments indexed by position. Unpinned
// slots come back as empty strings.
func (s *Store) Pins(ctx context.Context) ([SlotCount]string, error) {
	var pins [SlotCount]string

	rows, err := s.queries.ListHomepageSlots(ctx)
	if err != nil {
		return pins, fmt.Errorf("failed to list homepage slots: %w", err)
	}
	for _, row := range rows {
		if row.Position < 0 || row.Position >= SlotCount {
			continue
		}
		if row.ProductID.Valid {
			pins[row.Position] = row.ProductID.String
		}
	}
	return pins, nil
}

// Save reconciles the saved pins against the requested set, updating
// only the positions that changed, in one transaction.
func (s *Store) Save(ctx context.Context, pins [SlotCount]string) error {
	current, err := s.Pins(ctx)
	if err != nil {
		return err
	}

	tx, err := s.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.queries.WithTx(tx)
	for position := int64(0); position < SlotCount; position++ {
		if pins[position] == current[position] {
			continue
		}
		productID := sql.NullString{String: pins[position], Valid: pins[position] != ""}
		if err := qtx.UpdateHomepageSlot(ctx, db.UpdateHomepageSlotParams{
			ProductID: productID,
			Position:  position,
		}); err != nil {
			return fmt.Errorf("failed to update homepage slot %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit homepage slots: %w", err)
	}
	return nil
}
