package places

import "encoding/json"

// fixtureJSON is a trimmed business-search payload used when no API
// key is configured.
const fixtureJSON = `{
  "businesses": [
    {
      "name": "Chipotle Mexican Grill",
      "coordinates": {"latitude": 35.9606, "longitude": -83.9207},
      "distance": 1207.5,
      "location": {"address1": "478 S Gay St"},
      "categories": [{"title": "Mexican"}, {"title": "Fast Food"}],
      "rating": 4.0,
      "image_url": "https://img.example.com/chipotle.jpg",
      "price": "$",
      "phone": "+18655221234",
      "review_count": 312,
      "business_hours": [{"is_open_now": true}]
    },
    {
      "name": "Stock & Barrel",
      "coordinates": {"latitude": 35.9645, "longitude": -83.9186},
      "distance": 640.2,
      "location": {"address1": "35 Market Square"},
      "categories": [{"title": "Burgers"}, {"title": "Bourbon Bars"}],
      "rating": 4.5,
      "image_url": "https://img.example.com/stockbarrel.jpg",
      "price": "$$",
      "phone": "+18655225552",
      "review_count": 941,
      "business_hours": [{"is_open_now": true}]
    },
    {
      "name": "Tomato Head",
      "coordinates": {"latitude": 35.9649, "longitude": -83.9190},
      "distance": 820.9,
      "location": {"address1": "12 Market Square"},
      "categories": [{"title": "Pizza"}, {"title": "Vegetarian"}],
      "rating": 4.3,
      "image_url": "https://img.example.com/tomatohead.jpg",
      "price": "$$",
      "phone": "+18655371999",
      "review_count": 655,
      "business_hours": [{"is_open_now": false}]
    },
    {
      "name": "Kaizen",
      "coordinates": {"latitude": 35.9712, "longitude": -83.9201},
      "distance": 1930.1,
      "location": {"address1": "416 W Clinch Ave"},
      "categories": [{"title": "Asian Fusion"}],
      "rating": 4.6,
      "image_url": "https://img.example.com/kaizen.jpg",
      "price": "$$",
      "phone": "+18659344222",
      "review_count": 428,
      "business_hours": [{"is_open_now": true}]
    }
  ]
}`

func fixtureBusinesses() []business {
	var parsed searchResponse
	// The fixture is compiled in; a decode failure is a programmer
	// error surfaced as an empty result.
	_ = json.Unmarshal([]byte(fixtureJSON), &parsed)
	return parsed.Businesses
}
