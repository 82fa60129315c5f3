package order

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"sipstation/internal/pricing"
)

const (
	// HistoryCapacity bounds the in-memory history; the oldest
	// order is evicted once the cap is exceeded.
	HistoryCapacity = 20

	// DefaultHistoryLimit is how many orders history listings
	// return when the caller does not ask for a count.
	DefaultHistoryLimit = 5
)

// Service owns the order history. All mutations go through it;
// the mutex serializes appends, evictions, and status changes
// across concurrent request handlers.
type Service struct {
	mu      sync.Mutex
	history []*Order // oldest first

	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Create wraps a priced composite into a new order. Line items
// are copied from the composite, freezing their unit prices.
// New orders start in pending.
func (s *Service) Create(composite *pricing.Composite) *Order {
	now := s.now()

	items := make([]LineItem, 0, len(composite.Items))
	for _, li := range composite.Items {
		items = append(items, LineItem{
			ID:       li.ID,
			Type:     string(li.Type),
			Quantity: li.Quantity,
			Price:    li.UnitPrice,
		})
	}

	o := &Order{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         composite.TotalPrice,
		TotalCalories: composite.TotalCalories,
		Description:   composite.Description,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.history = append(s.history, o)
	if len(s.history) > HistoryCapacity {
		s.history = s.history[len(s.history)-HistoryCapacity:]
	}
	s.mu.Unlock()

	return o.clone()
}

// Get returns a copy of the order with the given id.
func (s *Service) Get(id string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.history {
		if o.ID == id {
			return o.clone(), nil
		}
	}
	return nil, ErrNotFound
}

// History returns up to limit orders, most recent first.
// limit <= 0 selects DefaultHistoryLimit.
func (s *Service) History(limit int) []*Order {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > len(s.history) {
		limit = len(s.history)
	}

	out := make([]*Order, 0, limit)
	for i := len(s.history) - 1; i >= len(s.history)-limit; i-- {
		out = append(out, s.history[i].clone())
	}
	return out
}

// UpdateStatus moves an order along the status machine. The raw
// status value is validated before any transition is attempted;
// terminal states reject every change.
func (s *Service) UpdateStatus(id, status string) (*Order, error) {
	next, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.history {
		if o.ID != id {
			continue
		}
		if !o.Status.CanTransition(next) {
			return nil, ErrInvalidTransition
		}
		o.Status = next
		o.UpdatedAt = s.now()
		return o.clone(), nil
	}
	return nil, ErrNotFound
}
