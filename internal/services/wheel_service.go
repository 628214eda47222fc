package services

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"wheelspin/internal/models"
	"wheelspin/internal/store"
)

// ErrNoItems reports a spin against a wheel that has nothing to pick
// from: no items, or a total weight of zero. The weight case should be
// unreachable after normalization but guards against corrupt persisted
// data.
var ErrNoItems = errors.New("wheel has no items to spin")

// WheelInput is a create or update payload. Nil fields are treated as
// omitted: updates only touch the fields a client actually sent.
// A non-nil empty Items slice replaces the wheel's items with none.
type WheelInput struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Items       []ItemInput `json:"items"`
}

// WheelService implements the wheel repository: CRUD plus spin against
// the single persisted document. Mutations are serialized through the
// queue; pure reads go straight to the store and may trail an in-flight
// write by at most one operation.
type WheelService struct {
	store *store.Store
	queue *SerialQueue
}

// NewWheelService creates a service over the given store with its own
// serialization queue.
func NewWheelService(s *store.Store) *WheelService {
	return &WheelService{
		store: s,
		queue: NewSerialQueue(),
	}
}

// GetWheels returns all wheels in insertion order.
func (s *WheelService) GetWheels() ([]models.Wheel, error) {
	if err := s.store.EnsureExists(); err != nil {
		return nil, err
	}
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return doc.Lists, nil
}

// GetWheel returns the wheel with the given id, or nil if absent.
func (s *WheelService) GetWheel(id string) (*models.Wheel, error) {
	wheels, err := s.GetWheels()
	if err != nil {
		return nil, err
	}
	for i := range wheels {
		if wheels[i].ID == id {
			return &wheels[i], nil
		}
	}
	return nil, nil
}

// CreateWheel normalizes the payload, mints a new wheel and persists it.
func (s *WheelService) CreateWheel(input WheelInput) (*models.Wheel, error) {
	var created models.Wheel
	err := s.mutate(func(doc *models.Document) (bool, error) {
		now := time.Now().UTC()
		created = models.Wheel{
			ID:        uuid.NewString(),
			Name:      models.DefaultWheelName,
			Items:     []models.Item{},
			Spins:     []models.SpinResult{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if input.Name != nil {
			created.Name = SanitizeName(*input.Name)
		}
		if input.Description != nil {
			created.Description = SanitizeDescription(*input.Description)
		}
		if input.Items != nil {
			created.Items = NormalizeItems(input.Items)
		}
		doc.Lists = append(doc.Lists, created)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWheel applies the supplied fields to an existing wheel. Omitted
// fields keep their prior value. Returns nil if no wheel matches.
func (s *WheelService) UpdateWheel(id string, input WheelInput) (*models.Wheel, error) {
	var updated *models.Wheel
	err := s.mutate(func(doc *models.Document) (bool, error) {
		w := findWheel(doc, id)
		if w == nil {
			return false, nil
		}
		if input.Name != nil {
			w.Name = SanitizeName(*input.Name)
		}
		if input.Description != nil {
			w.Description = SanitizeDescription(*input.Description)
		}
		if input.Items != nil {
			w.Items = NormalizeItems(input.Items)
		}
		w.UpdatedAt = time.Now().UTC()
		snapshot := *w
		updated = &snapshot
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteWheel removes the wheel with the given id and reports whether a
// removal happened. The document is only rewritten when it did.
func (s *WheelService) DeleteWheel(id string) (bool, error) {
	removed := false
	err := s.mutate(func(doc *models.Document) (bool, error) {
		for i := range doc.Lists {
			if doc.Lists[i].ID == id {
				doc.Lists = append(doc.Lists[:i], doc.Lists[i+1:]...)
				removed = true
				break
			}
		}
		return removed, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Spin picks a weighted-random item from the wheel, records the result
// in the wheel's history and persists. Returns nil if no wheel matches
// and ErrNoItems if there is nothing to pick from.
func (s *WheelService) Spin(id string) (*models.SpinResult, error) {
	var result *models.SpinResult
	err := s.mutate(func(doc *models.Document) (bool, error) {
		w := findWheel(doc, id)
		if w == nil {
			return false, nil
		}
		item, err := pickItem(w.Items)
		if err != nil {
			return false, err
		}
		spin := models.SpinResult{
			ID:        uuid.NewString(),
			ItemID:    item.ID,
			Label:     item.Label,
			Timestamp: time.Now().UTC(),
		}
		w.Spins = append([]models.SpinResult{spin}, w.Spins...)
		if len(w.Spins) > models.MaxSpins {
			w.Spins = w.Spins[:models.MaxSpins]
		}
		w.UpdatedAt = spin.Timestamp
		result = &spin
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// mutate runs one read-modify-write cycle through the queue. The write
// only happens after fn succeeds and reports a change, so a failed
// operation leaves the persisted document untouched.
func (s *WheelService) mutate(fn func(doc *models.Document) (bool, error)) error {
	if err := s.store.EnsureExists(); err != nil {
		return err
	}
	return s.queue.Run(func() error {
		doc, err := s.store.Read()
		if err != nil {
			return err
		}
		changed, err := fn(&doc)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.store.Write(doc)
	})
}

func findWheel(doc *models.Document, id string) *models.Wheel {
	for i := range doc.Lists {
		if doc.Lists[i].ID == id {
			return &doc.Lists[i]
		}
	}
	return nil
}

// pickItem draws a uniform random integer in [0, totalWeight) from
// crypto/rand and walks the items accumulating weight; the first item
// whose cumulative weight strictly exceeds the draw wins. Ties at
// bucket boundaries therefore resolve in list order, never by
// re-drawing. The strong source keeps outcomes unpredictable across
// repeated spins.
func pickItem(items []models.Item) (models.Item, error) {
	if len(items) == 0 {
		return models.Item{}, ErrNoItems
	}
	total := 0
	for _, it := range items {
		total += it.Weight
	}
	if total <= 0 {
		return models.Item{}, ErrNoItems
	}
	n, err := crand.Int(crand.Reader, big.NewInt(int64(total)))
	if err != nil {
		return models.Item{}, fmt.Errorf("random draw: %w", err)
	}
	draw := n.Int64()
	cumulative := int64(0)
	for _, it := range items {
		cumulative += int64(it.Weight)
		if cumulative > draw {
			return it, nil
		}
	}
	// Unreachable with integer weights, but a terminal fallback beats a
	// zero-value item.
	return items[len(items)-1], nil
}
