package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"events-backend/internal/domains/cart/model"
	"events-backend/pkg/logger"
)

// Storage is the durable slot the cart serializes into. One fixed key per
// store; implementations decide where that key lives (Redis, memory).
type Storage interface {
	// Load reads the persisted state. found=false means the slot is empty.
	Load(ctx context.Context) (*model.CartState, bool, error)

	// Save overwrites the slot with the given state.
	Save(ctx context.Context, state *model.CartState) error

	// Clear empties the slot.
	Clear(ctx context.Context) error
}

// Store owns one cart's state. It is built empty and does NOT auto-load from
// storage: Rehydrate must be called before any read is trusted, so output
// produced before storage is available never silently diverges from the
// restored state.
//
// A Store is not safe for concurrent mutation; build one per request.
type Store struct {
	state    model.CartState
	storage  Storage
	hydrated bool
	priceEps decimal.Decimal
}

// New creates an empty, not-yet-hydrated store over the given storage.
func New(storage Storage) *Store {
	eps, _ := decimal.NewFromString(model.PriceEpsilon)
	return &Store{
		state:    model.EmptyState(),
		storage:  storage,
		priceEps: eps,
	}
}

// Rehydrate loads the persisted state into the store. An empty slot leaves
// the store at the empty initial state. This is the only way storage is read.
func (s *Store) Rehydrate(ctx context.Context) error {
	persisted, found, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to rehydrate cart: %w", err)
	}

	if found {
		s.state = *persisted
		if s.state.Lines == nil {
			s.state.Lines = []model.LineItem{}
		}
	} else {
		s.state = model.EmptyState()
	}

	s.hydrated = true
	return nil
}

// Persist serializes the current state into the storage slot.
func (s *Store) Persist(ctx context.Context) error {
	if err := s.storage.Save(ctx, &s.state); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Hydrated reports whether Rehydrate has run.
func (s *Store) Hydrated() bool {
	return s.hydrated
}

// AddLine merges the item into an existing line with the same
// (eventId, optionsLabel) key, adding quantity and lineTotal, or appends it.
// Invalid items are a logged no-op.
func (s *Store) AddLine(item model.LineItem) {
	if err := validateLine(item); err != nil {
		logger.Warn("rejected invalid cart line", map[string]interface{}{
			"event_id": item.EventID,
			"reason":   err.Error(),
		})
		return
	}

	merged := false
	for i, line := range s.state.Lines {
		if line.Matches(item.EventID, item.OptionsLabel) {
			s.state.Lines[i].Quantity += item.Quantity
			s.state.Lines[i].LineTotal = line.LineTotal.Add(item.LineTotal)
			merged = true
			break
		}
	}

	if !merged {
		s.state.Lines = append(s.state.Lines, item)
	}

	s.recompute()
}

// RemoveLine deletes all lines matching the item's (eventId, optionsLabel)
// key. Missing event id is a logged no-op.
func (s *Store) RemoveLine(item model.LineItem) {
	if item.EventID == "" {
		logger.Error("cannot remove cart line", model.ErrMissingEventID)
		return
	}

	kept := s.state.Lines[:0]
	for _, line := range s.state.Lines {
		if !line.Matches(item.EventID, item.OptionsLabel) {
			kept = append(kept, line)
		}
	}
	s.state.Lines = kept

	s.recompute()
}

// UpdateQuantity sets a line's quantity, rescaling its total from the
// per-unit price derived from the current line. Zero removes the line,
// negative quantities are a logged no-op, and an unknown key leaves the cart
// untouched.
func (s *Store) UpdateQuantity(eventID, optionsLabel string, newQuantity int) {
	if newQuantity < 0 {
		logger.Error("cannot update cart line", model.ErrNegativeQuantity)
		return
	}

	idx := -1
	for i, line := range s.state.Lines {
		if line.Matches(eventID, optionsLabel) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	if newQuantity == 0 {
		s.state.Lines = append(s.state.Lines[:idx], s.state.Lines[idx+1:]...)
	} else {
		perUnit := s.state.Lines[idx].UnitPrice()
		s.state.Lines[idx].Quantity = newQuantity
		s.state.Lines[idx].LineTotal = perUnit.Mul(decimal.NewFromInt(int64(newQuantity)))
	}

	s.recompute()
}

// Clear resets the store to the empty initial state.
func (s *Store) Clear() {
	s.state = model.EmptyState()
}

// Validate recomputes the totals and compares them against the stored
// aggregates. On mismatch it logs a warning and overwrites the aggregates
// with the recomputed values. Returns whether the stored aggregates were
// already consistent. Never an error path: the check self-heals.
func (s *Store) Validate() bool {
	quantity, price := model.ComputeTotals(s.state.Lines)

	valid := s.state.TotalQuantity == quantity &&
		s.state.TotalPrice.Sub(price).Abs().LessThan(s.priceEps)

	if !valid {
		logger.Warn("cart totals mismatch detected, recalculating", map[string]interface{}{
			"stored_quantity":      s.state.TotalQuantity,
			"computed_quantity":    quantity,
			"stored_total_price":   s.state.TotalPrice,
			"computed_total_price": price,
		})
		s.state.TotalQuantity = quantity
		s.state.TotalPrice = price
	}

	return valid
}

// ItemCount returns the number of distinct lines.
func (s *Store) ItemCount() int {
	return len(s.state.Lines)
}

// TotalItems returns the sum of all line quantities.
func (s *Store) TotalItems() int {
	return s.state.TotalQuantity
}

// FormattedTotal returns the total price formatted to two decimal places.
func (s *Store) FormattedTotal() string {
	return s.state.TotalPrice.StringFixed(2)
}

// Contains reports whether a line with the given key is in the cart.
func (s *Store) Contains(eventID, optionsLabel string) bool {
	for _, line := range s.state.Lines {
		if line.Matches(eventID, optionsLabel) {
			return true
		}
	}
	return false
}

// Line returns the single line with the given key.
func (s *Store) Line(eventID, optionsLabel string) (model.LineItem, bool) {
	for _, line := range s.state.Lines {
		if line.Matches(eventID, optionsLabel) {
			return line, true
		}
	}
	return model.LineItem{}, false
}

// Summary combines the query helpers into one object.
func (s *Store) Summary() model.Summary {
	return model.Summary{
		ItemCount:      len(s.state.Lines),
		TotalQuantity:  s.state.TotalQuantity,
		TotalPrice:     s.state.TotalPrice,
		FormattedTotal: s.FormattedTotal(),
		IsEmpty:        len(s.state.Lines) == 0,
	}
}

// State returns a copy of the current cart state.
func (s *Store) State() model.CartState {
	lines := make([]model.LineItem, len(s.state.Lines))
	copy(lines, s.state.Lines)
	return model.CartState{
		Lines:         lines,
		TotalQuantity: s.state.TotalQuantity,
		TotalPrice:    s.state.TotalPrice,
	}
}

// recompute rebuilds the aggregates from the full line list. Idempotent by
// construction; runs after every mutation.
func (s *Store) recompute() {
	s.state.TotalQuantity, s.state.TotalPrice = model.ComputeTotals(s.state.Lines)
}

func validateLine(item model.LineItem) error {
	if item.EventID == "" {
		return model.ErrMissingEventID
	}
	if item.Quantity <= 0 {
		return model.ErrInvalidQuantity
	}
	if item.LineTotal.IsNegative() {
		return model.ErrInvalidLineTotal
	}
	return nil
}
