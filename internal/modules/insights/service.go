package insights

import (
	"context"
	"log"
	"sort"
	"time"

	"bitewrap/internal/domain"
)

const topN = 5

// CounterReader supplies the raw analytics rows for one user.
type CounterReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.AnalyticsCounter, error)
}

type Service struct {
	counters CounterReader
	now      func() time.Time
}

func NewService(counters CounterReader) *Service {
	return &Service{counters: counters, now: time.Now}
}

// ComputeInsights derives the ranked top lists from the user's
// analytics counters. Any fetch failure is swallowed into a fully
// empty result so the insights screen degrades to "not enough data"
// instead of an error.
func (s *Service) ComputeInsights(ctx context.Context, userID int64) InsightData {
	counters, err := s.counters.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("insights: fetch failed for user %d: %v", userID, err)
		return emptyInsightData()
	}

	now := s.now()
	year, month := now.Year(), int(now.Month())

	var restaurants, recipes, ingredients []domain.AnalyticsCounter
	for _, c := range counters {
		switch c.ItemType {
		case domain.ItemRestaurant:
			restaurants = append(restaurants, c)
		case domain.ItemRecipe:
			recipes = append(recipes, c)
		case domain.ItemIngredient:
			ingredients = append(ingredients, c)
		}
	}

	return InsightData{
		MostVisitedRestaurants: RestaurantRanking{
			ThisMonth: rank(restaurants, func(c domain.AnalyticsCounter) bool {
				return c.Year == year && c.Month == month
			}),
			ThisYear: rank(restaurants, func(c domain.AnalyticsCounter) bool {
				return c.Year == year
			}),
			AllTime: rank(restaurants, nil),
		},
		MostCookedDishes: rank(recipes, nil),
		TopIngredients:   rank(ingredients, nil),
	}
}

// rank sums the matching counters per item name, then orders by count
// descending with name ascending as the deterministic tie-break, and
// truncates to the top five.
func rank(counters []domain.AnalyticsCounter, match func(domain.AnalyticsCounter) bool) []RankedItem {
	sums := make(map[string]*RankedItem)
	order := make([]string, 0, len(counters))

	for _, c := range counters {
		if match != nil && !match(c) {
			continue
		}
		item, ok := sums[c.ItemName]
		if !ok {
			item = &RankedItem{Name: c.ItemName}
			sums[c.ItemName] = item
			order = append(order, c.ItemName)
		}
		item.Count += c.Count
		if item.Image == "" {
			item.Image = c.Image
		}
	}

	ranked := make([]RankedItem, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *sums[name])
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
