package places

// Location is the device-supplied coordinate pair. Acquiring it (GPS,
// permission prompt) is the client's job; the API only consumes it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Restaurant is the normalized search result handed to the client.
type Restaurant struct {
	Name        string     `json:"name"`
	Coordinate  Coordinate `json:"coordinate"`
	Distance    float64    `json:"distance"` // miles
	Address     string     `json:"address,omitempty"`
	Category    string     `json:"category"`
	CuisineType string     `json:"cuisine_type,omitempty"`
	Rating      float64    `json:"rating,omitempty"`
	Image       string     `json:"image,omitempty"`
	PriceLevel  string     `json:"price_level,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	ReviewCount int        `json:"review_count,omitempty"`
	IsOpenNow   bool       `json:"is_open_now,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// searchResponse mirrors the Yelp-style business search payload.
type searchResponse struct {
	Businesses []business `json:"businesses"`
}

type business struct {
	Name        string `json:"name"`
	Coordinates *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Distance float64 `json:"distance"` // meters
	Location *struct {
		Address1 string `json:"address1"`
	} `json:"location"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"image_url"`
	Price         string  `json:"price"`
	Phone         string  `json:"phone"`
	DisplayPhone  string  `json:"display_phone"`
	ReviewCount   int     `json:"review_count"`
	URL           string  `json:"url"`
	BusinessHours []struct {
		IsOpenNow bool `json:"is_open_now"`
	} `json:"business_hours"`
}
