package catalog

import "github.com/shopspring/decimal"

func init() {
	// Prices must serialize as JSON numbers so the kiosk frontend
	// can consume them directly.
	decimal.MarshalJSONWithoutQuotes = true
}

// Beverage is a base drink on the kiosk menu.
type Beverage struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"` // coffee | tea | soda | juice
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Calories    int             `json:"calories"`
	Hot         bool            `json:"hot"`
	Image       string          `json:"image"`
}

// Condiment is an add-on that can be ordered with a beverage.
type Condiment struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"` // dairy | sweetener | syrup | topping | other
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Calories    int             `json:"calories"`
	Image       string          `json:"image"`
}

var beverageCategories = map[string]bool{
	"coffee": true,
	"tea":    true,
	"soda":   true,
	"juice":  true,
}

var condimentCategories = map[string]bool{
	"dairy":     true,
	"sweetener": true,
	"syrup":     true,
	"topping":   true,
	"other":     true,
}
