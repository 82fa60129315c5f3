package recommend

import (
	"math/rand"
	"sort"

	"sipstation/internal/order"
)

// Recommendation is the suggestion shape shared by the heuristic
// and delegated paths.
type Recommendation struct {
	Beverage   string   `json:"beverage"`
	Condiments []string `json:"condiments"`
	Reason     string   `json:"reason"`
}

// defaults are the canned suggestions used when history gives us
// nothing to work with.
var defaults = []Recommendation{
	{Beverage: "coffee", Condiments: []string{"milk", "sugar"}, Reason: "A classic pairing, rich and smooth"},
	{Beverage: "latte", Condiments: []string{"vanilla", "cream"}, Reason: "Vanilla sweetness on velvety milk"},
	{Beverage: "mocha", Condiments: []string{"cream", "chocolate"}, Reason: "A favorite for chocolate lovers"},
	{Beverage: "americano", Condiments: []string{"ice", "caramel"}, Reason: "Cool and refreshing with a caramel note"},
}

// Heuristic recommends from order history alone: the most
// frequently ordered beverage plus its top two condiments.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Recommend tallies beverage and condiment frequency across
// history. Ties break toward the first-seen id, so the result is
// stable for a given history. Empty history falls back to one of
// the canned defaults.
func (h *Heuristic) Recommend(history []*order.Order) Recommendation {
	beverageCount := map[string]int{}
	condimentCount := map[string]int{}
	var beverageSeen, condimentSeen []string

	for _, o := range history {
		for _, item := range o.Items {
			switch item.Type {
			case "beverage":
				if beverageCount[item.ID] == 0 {
					beverageSeen = append(beverageSeen, item.ID)
				}
				beverageCount[item.ID]++
			case "condiment":
				if condimentCount[item.ID] == 0 {
					condimentSeen = append(condimentSeen, item.ID)
				}
				condimentCount[item.ID]++
			}
		}
	}

	if len(beverageCount) == 0 {
		return defaults[rand.Intn(len(defaults))]
	}

	beverage := modeOf(beverageCount, beverageSeen)
	condiments := topTwo(condimentCount, condimentSeen)

	if len(condiments) == 0 {
		for _, d := range defaults {
			if d.Beverage == beverage {
				return d
			}
		}
	}

	return Recommendation{
		Beverage:   beverage,
		Condiments: condiments,
		Reason:     "Based on your order history",
	}
}

func modeOf(counts map[string]int, seen []string) string {
	best := ""
	for _, id := range seen {
		if best == "" || counts[id] > counts[best] {
			best = id
		}
	}
	return best
}

func topTwo(counts map[string]int, seen []string) []string {
	ids := make([]string, len(seen))
	copy(ids, seen)

	firstSeen := map[string]int{}
	for i, id := range seen {
		firstSeen[id] = i
	}

	sort.SliceStable(ids, func(a, b int) bool {
		if counts[ids[a]] != counts[ids[b]] {
			return counts[ids[a]] > counts[ids[b]]
		}
		return firstSeen[ids[a]] < firstSeen[ids[b]]
	})

	if len(ids) > 2 {
		ids = ids[:2]
	}
	return ids
}
