package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"sipstation/internal/catalog"
)

var (
	ErrUnknownBeverage  = errors.New("unknown beverage")
	ErrInvalidCondiment = errors.New("invalid condiment")
)

// Selection is one requested condiment with its quantity.
type Selection struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type LineType string

const (
	LineBeverage  LineType = "beverage"
	LineCondiment LineType = "condiment"
)

// LineItem records one priced line of a composite. UnitPrice is
// the catalog price read at composition time; it is the value
// that gets frozen into orders.
type LineItem struct {
	ID        string          `json:"id"`
	Type      LineType        `json:"type"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Composite is a beverage folded together with its condiment
// selections: the line items in input order (beverage first),
// plus derived totals. It is never stored; orders freeze a copy.
type Composite struct {
	Items         []LineItem      `json:"items"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TotalCalories int             `json:"totalCalories"`
	Description   string          `json:"description"`
}

// Compose validates beverageID and selections against the catalog
// and folds them into a single priced composite.
//
// Validation is atomic: any unknown condiment id or quantity < 1
// fails the whole call, never a partial composite. Repeated ids
// stay independent lines in input order.
func Compose(cat *catalog.Catalog, beverageID string, selections []Selection) (*Composite, error) {
	bev, ok := cat.Beverage(beverageID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBeverage, beverageID)
	}

	items := make([]LineItem, 0, len(selections)+1)
	items = append(items, LineItem{
		ID:        bev.ID,
		Type:      LineBeverage,
		Quantity:  1,
		UnitPrice: bev.Price,
	})

	total := bev.Price
	calories := bev.Calories

	var desc strings.Builder
	desc.WriteString(bev.Name)

	for _, sel := range selections {
		cond, ok := cat.Condiment(sel.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCondiment, sel.ID)
		}
		if sel.Quantity < 1 {
			return nil, fmt.Errorf("%w: %q: quantity must be at least 1", ErrInvalidCondiment, sel.ID)
		}

		items = append(items, LineItem{
			ID:        cond.ID,
			Type:      LineCondiment,
			Quantity:  sel.Quantity,
			UnitPrice: cond.Price,
		})

		qty := decimal.NewFromInt(int64(sel.Quantity))
		total = total.Add(cond.Price.Mul(qty))
		calories += cond.Calories * sel.Quantity

		fmt.Fprintf(&desc, ", %dx %s", sel.Quantity, cond.Name)
	}

	return &Composite{
		Items:         items,
		TotalPrice:    total,
		TotalCalories: calories,
		Description:   desc.String(),
	}, nil
}
