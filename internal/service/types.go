package service

import "github.com/smarthub/hubfare/internal/catalog"

type DirectSummary struct {
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// HubOption is one ranked way of flying via a hub. It is built per query and
// never stored.
type HubOption struct {
	Via            string           `json:"via"`
	HubName        string           `json:"hubName"`
	HubCity        string           `json:"hubCity"`
	HubCountry     string           `json:"hubCountry"`
	HubCoords      *catalog.Coords  `json:"hubCoords,omitempty"`
	Price          float64          `json:"price"`
	Duration       int              `json:"duration"`
	Savings        float64          `json:"savings"`
	SavingsPercent float64          `json:"savingsPercent"`
	HubRating      int              `json:"hubRating"`
	Score          int              `json:"score"`
	DirectPrice    *float64         `json:"directPrice"`
	IsCheapest     bool             `json:"isCheapest"`
	HubInfo        *catalog.Airport `json:"hubInfo,omitempty"`
	HubDetails     *HubDetails      `json:"hubDetails,omitempty"`
}

// Recommendation is the shape shared by the catalog and the live/simulated paths.
type Recommendation struct {
	Origin             *catalog.Airport `json:"origin"`
	Destination        *catalog.Airport `json:"destination"`
	DirectRoute        *DirectSummary   `json:"directRoute"`
	HubRoutes          []HubOption      `json:"hubRoutes"`
	BestRecommendation *HubOption       `json:"bestRecommendation"`
	PotentialSavings   float64          `json:"potentialSavings"`
}

type Comparison struct {
	Found              bool             `json:"found"`
	Message            string           `json:"message,omitempty"`
	Origin             *catalog.Airport `json:"origin,omitempty"`
	Destination        *catalog.Airport `json:"destination,omitempty"`
	Direct             *DirectSummary   `json:"direct"`
	HubOptions         []HubOption      `json:"hubOptions"`
	BestSavings        float64          `json:"bestSavings"`
	BestSavingsPercent float64          `json:"bestSavingsPercent"`
	RecommendedHub     *string          `json:"recommendedHub"`
}

// HubDetails merges a hub airport, its static description and a snapshot of
// the savings seen on routes through it.
type HubDetails struct {
	catalog.Airport
	catalog.HubInfo
	AvgSavings float64 `json:"avgSavings"`
	Rating     int     `json:"rating"`
	RouteCount int     `json:"routeCount"`
}

type HubStatsRoute struct {
	From           string  `json:"from"`
	To             string  `json:"to"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savingsPercent"`
	Rating         int     `json:"rating"`
}

type HubStats struct {
	HubID             string          `json:"hubId"`
	HubName           string          `json:"hubName,omitempty"`
	RouteCount        int             `json:"routeCount"`
	AvgSavings        float64         `json:"avgSavings"`
	AvgSavingsPercent float64         `json:"avgSavingsPercent"`
	AvgRating         float64         `json:"avgRating"`
	MaxSavings        float64         `json:"maxSavings"`
	MinSavings        float64         `json:"minSavings"`
	MaxSavingsPercent float64         `json:"maxSavingsPercent"`
	Routes            []HubStatsRoute `json:"routes"`
}

type RouteView struct {
	catalog.Route
	Score       int              `json:"score"`
	FromAirport *catalog.Airport `json:"fromAirport"`
	ToAirport   *catalog.Airport `json:"toAirport"`
	HubAirport  *catalog.Airport `json:"hubAirport"`
}

type RoutePair struct {
	From        string           `json:"from"`
	To          string           `json:"to"`
	FromAirport *catalog.Airport `json:"fromAirport"`
	ToAirport   *catalog.Airport `json:"toAirport"`
	HasDirect   bool             `json:"hasDirect"`
	HasHub      bool             `json:"hasHub"`
	HubCount    int              `json:"hubCount"`
}
