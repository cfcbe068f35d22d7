package catalog

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Coords is a [longitude, latitude] pair.
type Coords [2]float64

type Airport struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
	Coords  Coords `json:"coords" yaml:"coords"`
	IsHub   bool   `json:"isHub" yaml:"isHub"`
}

type RouteType string

const (
	RouteDirect RouteType = "direct"
	RouteHub    RouteType = "hub"
)

// Route is a precomputed fare. Via, Savings and SavingsPercent are only set
// on hub routes; savings are relative to the cheapest direct fare of the pair.
type Route struct {
	From           string    `json:"from" yaml:"from"`
	To             string    `json:"to" yaml:"to"`
	Type           RouteType `json:"type" yaml:"type"`
	Price          float64   `json:"price" yaml:"price"`
	Duration       int       `json:"duration" yaml:"duration"`
	Via            string    `json:"via,omitempty" yaml:"via,omitempty"`
	Savings        float64   `json:"savings,omitempty" yaml:"savings,omitempty"`
	SavingsPercent float64   `json:"savingsPercent,omitempty" yaml:"savingsPercent,omitempty"`
}

// HubInfo is the static descriptive data kept for a hub airport.
type HubInfo struct {
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	ShortSummary  string   `json:"shortSummary,omitempty" yaml:"shortSummary,omitempty"`
	AvgLayover    string   `json:"avgLayover,omitempty" yaml:"avgLayover,omitempty"`
	TotalFlights  string   `json:"totalFlights,omitempty" yaml:"totalFlights,omitempty"`
	Features      []string `json:"features,omitempty" yaml:"features,omitempty"`
	PopularRoutes []string `json:"popularRoutes,omitempty" yaml:"popularRoutes,omitempty"`
	AvgSavings    float64  `json:"avgSavings,omitempty" yaml:"avgSavings,omitempty"`
	Rating        int      `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// Catalog is the read-only reference dataset. It is built once and never
// mutated, so concurrent readers need no locking. Accessors return copies.
type Catalog struct {
	airports []Airport
	byID     map[string]int
	routes   []Route
	hubInfo  map[string]HubInfo
}

// New validates the data and builds a catalog. Hub routes with negative
// savings are clamped to zero.
func New(airports []Airport, routes []Route, hubInfo map[string]HubInfo) (*Catalog, error) {
	c := &Catalog{
		airports: make([]Airport, 0, len(airports)),
		byID:     make(map[string]int, len(airports)),
		routes:   make([]Route, 0, len(routes)),
		hubInfo:  make(map[string]HubInfo, len(hubInfo)),
	}

	for _, a := range airports {
		if len(a.ID) != 3 {
			return nil, fmt.Errorf("%w: airport id %q must be a 3-letter code", ErrInvalidCatalog, a.ID)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate airport %s", ErrInvalidCatalog, a.ID)
		}
		c.byID[a.ID] = len(c.airports)
		c.airports = append(c.airports, a)
	}

	for i, r := range routes {
		if r.Price <= 0 || r.Duration <= 0 {
			return nil, fmt.Errorf("%w: route %d %s-%s needs a positive price and duration", ErrInvalidCatalog, i, r.From, r.To)
		}
		switch r.Type {
		case RouteDirect:
			r.Via, r.Savings, r.SavingsPercent = "", 0, 0
		case RouteHub:
			hub, ok := c.Airport(r.Via)
			if !ok || !hub.IsHub {
				return nil, fmt.Errorf("%w: route %d %s-%s via %q is not a hub airport", ErrInvalidCatalog, i, r.From, r.To, r.Via)
			}
			r.Savings = math.Max(0, r.Savings)
			r.SavingsPercent = math.Max(0, r.SavingsPercent)
		default:
			return nil, fmt.Errorf("%w: route %d has unknown type %q", ErrInvalidCatalog, i, r.Type)
		}
		c.routes = append(c.routes, r)
	}

	for id, info := range hubInfo {
		c.hubInfo[id] = info
	}
	return c, nil
}

func (c *Catalog) Airport(id string) (Airport, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Airport{}, false
	}
	return c.airports[i], true
}

func (c *Catalog) Airports() []Airport {
	return append([]Airport(nil), c.airports...)
}

func (c *Catalog) Hubs() []Airport {
	var out []Airport
	for _, a := range c.airports {
		if a.IsHub {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) HubInfo(id string) (HubInfo, bool) {
	info, ok := c.hubInfo[id]
	return info, ok
}

// RouteFilter narrows Routes. Zero-valued fields are ignored; the rest are ANDed.
type RouteFilter struct {
	From       string
	To         string
	Type       RouteType
	MinSavings float64
	Hub        string
}

func (f RouteFilter) match(r Route) bool {
	switch {
	case f.From != "" && r.From != f.From:
		return false
	case f.To != "" && r.To != f.To:
		return false
	case f.Type != "" && r.Type != f.Type:
		return false
	case f.MinSavings > 0 && r.Savings < f.MinSavings:
		return false
	case f.Hub != "" && r.Via != f.Hub:
		return false
	}
	return true
}

// Routes returns the routes matching f in catalog order.
func (c *Catalog) Routes(f RouteFilter) []Route {
	var out []Route
	for _, r := range c.routes {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// CheapestDirect returns the lowest-priced direct route of the pair.
func (c *Catalog) CheapestDirect(from, to string) (Route, bool) {
	var best Route
	found := false
	for _, r := range c.Routes(RouteFilter{From: from, To: to, Type: RouteDirect}) {
		if !found || r.Price < best.Price {
			best, found = r, true
		}
	}
	return best, found
}

func (c *Catalog) HubRoutes(from, to string) []Route {
	return c.Routes(RouteFilter{From: from, To: to, Type: RouteHub})
}

func (c *Catalog) RoutesVia(hubID string) []Route {
	if hubID == "" {
		return nil
	}
	return c.Routes(RouteFilter{Hub: hubID})
}
