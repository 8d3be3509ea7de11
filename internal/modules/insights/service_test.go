package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitewrap/internal/domain"
)

type fakeCounterReader struct {
	counters []domain.AnalyticsCounter
	err      error
}

func (f *fakeCounterReader) ListByUser(ctx context.Context, userID int64) ([]domain.AnalyticsCounter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counters, nil
}

func newTestService(reader *fakeCounterReader, now time.Time) *Service {
	svc := NewService(reader)
	svc.now = func() time.Time { return now }
	return svc
}

// june2024 keeps the month/year partitions deterministic.
var june2024 = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func restaurantCounter(name string, year, month int, count int64) domain.AnalyticsCounter {
	return domain.AnalyticsCounter{
		UserID: 1, ItemType: domain.ItemRestaurant, ItemName: name,
		Year: year, Month: month, Count: count,
	}
}

func TestDuplicateNamesAggregateAcrossMonths(t *testing.T) {
	reader := &fakeCounterReader{counters: []domain.AnalyticsCounter{
		restaurantCounter("Chipotle", 2024, 3, 3),
		restaurantCounter("Chipotle", 2024, 6, 4),
	}}
	svc := newTestService(reader, june2024)

	data := svc.ComputeInsights(context.Background(), 1)

	require.Len(t, data.MostVisitedRestaurants.AllTime, 1)
	assert.EqualValues(t, 7, data.MostVisitedRestaurants.AllTime[0].Count)

	require.Len(t, data.MostVisitedRestaurants.ThisYear, 1)
	assert.EqualValues(t, 7, data.MostVisitedRestaurants.ThisYear[0].Count)

	// Only the June row contributes to the current month.
	require.Len(t, data.MostVisitedRestaurants.ThisMonth, 1)
	assert.EqualValues(t, 4, data.MostVisitedRestaurants.ThisMonth[0].Count)
}

func TestTopFiveTruncation(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	var counters []domain.AnalyticsCounter
	for i, name := range names {
		counters = append(counters, restaurantCounter(name, 2024, 6, int64(10+i)))
	}
	svc := newTestService(&fakeCounterReader{counters: counters}, june2024)

	data := svc.ComputeInsights(context.Background(), 1)

	for _, period := range [][]RankedItem{
		data.MostVisitedRestaurants.ThisMonth,
		data.MostVisitedRestaurants.ThisYear,
		data.MostVisitedRestaurants.AllTime,
	} {
		require.Len(t, period, 5)
		// The five highest counts, descending: H=17 down to D=13.
		assert.Equal(t, "H", period[0].Name)
		assert.EqualValues(t, 17, period[0].Count)
		assert.Equal(t, "D", period[4].Name)
		assert.EqualValues(t, 13, period[4].Count)
	}
}

func TestTieBreakIsNameAscending(t *testing.T) {
	svc := newTestService(&fakeCounterReader{counters: []domain.AnalyticsCounter{
		restaurantCounter("Zaxby's", 2024, 6, 2),
		restaurantCounter("Arby's", 2024, 6, 2),
		restaurantCounter("Moe's", 2024, 6, 2),
	}}, june2024)

	data := svc.ComputeInsights(context.Background(), 1)

	require.Len(t, data.MostVisitedRestaurants.AllTime, 3)
	assert.Equal(t, "Arby's", data.MostVisitedRestaurants.AllTime[0].Name)
	assert.Equal(t, "Moe's", data.MostVisitedRestaurants.AllTime[1].Name)
	assert.Equal(t, "Zaxby's", data.MostVisitedRestaurants.AllTime[2].Name)
}

func TestRecipesAndIngredientsSkipPeriodPartitioning(t *testing.T) {
	svc := newTestService(&fakeCounterReader{counters: []domain.AnalyticsCounter{
		{UserID: 1, ItemType: domain.ItemRecipe, ItemName: "Stir Fry", Year: 2021, Month: 1, Count: 9},
		{UserID: 1, ItemType: domain.ItemRecipe, ItemName: "Oats", Year: 2024, Month: 6, Count: 4},
		{UserID: 1, ItemType: domain.ItemIngredient, ItemName: "rice", Year: 2021, Month: 1, Count: 12},
	}}, june2024)

	data := svc.ComputeInsights(context.Background(), 1)

	// Old rows still rank; dishes and ingredients have no windows.
	require.Len(t, data.MostCookedDishes, 2)
	assert.Equal(t, "Stir Fry", data.MostCookedDishes[0].Name)
	require.Len(t, data.TopIngredients, 1)
	assert.Equal(t, "rice", data.TopIngredients[0].Name)
}

func TestEmptyCountersYieldEmptyLists(t *testing.T) {
	svc := newTestService(&fakeCounterReader{}, june2024)

	data := svc.ComputeInsights(context.Background(), 1)

	assert.Empty(t, data.MostVisitedRestaurants.ThisMonth)
	assert.Empty(t, data.MostVisitedRestaurants.ThisYear)
	assert.Empty(t, data.MostVisitedRestaurants.AllTime)
	assert.Empty(t, data.MostCookedDishes)
	assert.Empty(t, data.TopIngredients)
}

func TestFetchErrorFailsSoft(t *testing.T) {
	svc := newTestService(&fakeCounterReader{err: errors.New("connection refused")}, june2024)

	data := svc.ComputeInsights(context.Background(), 1)

	// Lists are present and empty, never nil, so the client renders
	// the empty state instead of crashing.
	assert.NotNil(t, data.MostVisitedRestaurants.ThisMonth)
	assert.NotNil(t, data.MostCookedDishes)
	assert.NotNil(t, data.TopIngredients)
	assert.Empty(t, data.MostVisitedRestaurants.AllTime)
}
