package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchNearbyServesFixtureWithoutKey(t *testing.T) {
	svc := NewService("", "")

	restaurants, err := svc.SearchNearby(context.Background(), Location{Latitude: 35.96, Longitude: -83.92})
	require.NoError(t, err)
	require.NotEmpty(t, restaurants)

	var chipotle *Restaurant
	for i := range restaurants {
		if restaurants[i].Name == "Chipotle Mexican Grill" {
			chipotle = &restaurants[i]
		}
	}
	require.NotNil(t, chipotle)
	assert.Equal(t, "478 S Gay St", chipotle.Address)
	assert.Equal(t, "Mexican", chipotle.Category)
	assert.Equal(t, "Mexican, Fast Food", chipotle.CuisineType)
	// 1207.5 meters is roughly three quarters of a mile.
	assert.InDelta(t, 0.75, chipotle.Distance, 0.01)
	assert.True(t, chipotle.IsOpenNow)
}

func TestSearchNearbyCallsProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "restaurants", q.Get("categories"))
		assert.NotEmpty(t, q.Get("latitude"))
		assert.NotEmpty(t, q.Get("longitude"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"businesses":[{
			"name": "Noodle Bar",
			"distance": 1609.34,
			"location": {"address1": "1 Main St"},
			"categories": [{"title": "Ramen"}],
			"rating": 4.8,
			"review_count": 77
		}]}`))
	}))
	defer server.Close()

	svc := NewService("test-key", server.URL)

	restaurants, err := svc.SearchNearby(context.Background(), Location{Latitude: 35.0, Longitude: -83.0})
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	r := restaurants[0]
	assert.Equal(t, "Noodle Bar", r.Name)
	assert.InDelta(t, 1.0, r.Distance, 0.01)
	// Missing coordinates fall back to the search location.
	assert.Equal(t, 35.0, r.Coordinate.Latitude)
	assert.Equal(t, "Ramen", r.Category)
	assert.Equal(t, 77, r.ReviewCount)
}

func TestSearchNearbyPropagatesProviderErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewService("test-key", server.URL)

	_, err := svc.SearchNearby(context.Background(), Location{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
