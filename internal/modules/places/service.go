package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.yelp.com/v3/businesses/search"
	searchRadius   = 40000 // meters, ~25 miles
	searchLimit    = 50
	metersToMiles  = 0.000621371
)

type Service struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewService builds the nearby-restaurant search. Without an API key
// the built-in fixture is served, which keeps local development and
// tests off the network.
func NewService(apiKey, baseURL string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *Service) SearchNearby(ctx context.Context, loc Location) ([]Restaurant, error) {
	if s.apiKey == "" {
		return mapBusinesses(fixtureBusinesses(), loc), nil
	}

	reqURL, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := reqURL.Query()
	params.Add("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Add("categories", "restaurants")
	params.Add("radius", strconv.Itoa(searchRadius))
	params.Add("limit", strconv.Itoa(searchLimit))
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("places API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	return mapBusinesses(parsed.Businesses, loc), nil
}

// mapBusinesses normalizes the provider payload into typed records at
// the boundary, filling coordinate gaps with the search location.
func mapBusinesses(businesses []business, loc Location) []Restaurant {
	restaurants := make([]Restaurant, 0, len(businesses))
	for _, b := range businesses {
		r := Restaurant{
			Name:        b.Name,
			Coordinate:  Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude},
			Distance:    b.Distance * metersToMiles,
			Address:     "Local restaurant",
			Category:    "Restaurant",
			Rating:      b.Rating,
			Image:       b.ImageURL,
			PriceLevel:  b.Price,
			Phone:       b.Phone,
			ReviewCount: b.ReviewCount,
			URL:         b.URL,
		}
		if b.Coordinates != nil {
			r.Coordinate = Coordinate{Latitude: b.Coordinates.Latitude, Longitude: b.Coordinates.Longitude}
		}
		if b.Location != nil && b.Location.Address1 != "" {
			r.Address = b.Location.Address1
		}
		if len(b.Categories) > 0 {
			r.Category = b.Categories[0].Title
			titles := make([]string, 0, len(b.Categories))
			for _, cat := range b.Categories {
				titles = append(titles, cat.Title)
			}
			r.CuisineType = strings.Join(titles, ", ")
		}
		if len(b.BusinessHours) > 0 {
			r.IsOpenNow = b.BusinessHours[0].IsOpenNow
		}
		restaurants = append(restaurants, r)
	}
	return restaurants
}
