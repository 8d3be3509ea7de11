package insights

// RankedItem is one row of a top-N list.
type RankedItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
	Image string `json:"image,omitempty"`
}

// RestaurantRanking holds the three time windows for restaurant visits.
type RestaurantRanking struct {
	ThisMonth []RankedItem `json:"this_month"`
	ThisYear  []RankedItem `json:"this_year"`
	AllTime   []RankedItem `json:"all_time"`
}

type InsightData struct {
	MostVisitedRestaurants RestaurantRanking `json:"most_visited_restaurants"`
	MostCookedDishes       []RankedItem      `json:"most_cooked_dishes"`
	TopIngredients         []RankedItem      `json:"top_ingredients"`
}

// emptyInsightData is the fail-soft result: every list present, every
// list empty.
func emptyInsightData() InsightData {
	return InsightData{
		MostVisitedRestaurants: RestaurantRanking{
			ThisMonth: []RankedItem{},
			ThisYear:  []RankedItem{},
			AllTime:   []RankedItem{},
		},
		MostCookedDishes: []RankedItem{},
		TopIngredients:   []RankedItem{},
	}
}
