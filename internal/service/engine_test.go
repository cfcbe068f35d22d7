package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthub/hubfare/internal/catalog"
)

func testAirports() []catalog.Airport {
	return []catalog.Airport{
		{ID: "CDG", Name: "Paris CDG", City: "Paris", Country: "France", Coords: catalog.Coords{2.54, 49.00}},
		{ID: "BKK", Name: "Suvarnabhumi", City: "Bangkok", Country: "Thailand", Coords: catalog.Coords{100.75, 13.68}},
		{ID: "SYD", Name: "Sydney", City: "Sydney", Country: "Australia"},
		{ID: "DXB", Name: "Dubai Intl", City: "Dubai", Country: "UAE", Coords: catalog.Coords{55.36, 25.25}, IsHub: true},
		{ID: "DOH", Name: "Hamad Intl", City: "Doha", Country: "Qatar", IsHub: true},
		{ID: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", IsHub: true},
		{ID: "SIN", Name: "Changi", City: "Singapore", Country: "Singapore", IsHub: true},
	}
}

func newTestEngine(t *testing.T, routes []catalog.Route, info map[string]catalog.HubInfo) *Engine {
	t.Helper()
	cat, err := catalog.New(testAirports(), routes, info)
	require.NoError(t, err)
	return NewEngine(cat)
}

func cdgBkkRoutes() []catalog.Route {
	return []catalog.Route{
		{From: "CDG", To: "BKK", Type: catalog.RouteDirect, Price: 900, Duration: 690},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "IST", Price: 720, Duration: 830, Savings: 180, SavingsPercent: 20},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DXB", Price: 600, Duration: 860, Savings: 300, SavingsPercent: 33},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DOH", Price: 630, Duration: 880, Savings: 270, SavingsPercent: 30},
	}
}

func TestCompare_NotFound(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), nil)

	res := e.Compare("BKK", "CDG")
	require.False(t, res.Found)
	require.Equal(t, "No routes found for this journey", res.Message)
	require.Nil(t, res.RecommendedHub)
}

func TestCompare_SortsByPriceAndMarksCheapest(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), nil)

	res := e.Compare("cdg", " bkk ")
	require.True(t, res.Found)
	require.NotNil(t, res.Direct)
	assert.Equal(t, 900.0, res.Direct.Price)
	assert.Equal(t, "Paris", res.Origin.City)

	require.Len(t, res.HubOptions, 3)
	assert.Equal(t, []string{"DXB", "DOH", "IST"}, vias(res.HubOptions))

	cheapest := 0
	for _, o := range res.HubOptions {
		if o.IsCheapest {
			cheapest++
		}
	}
	assert.Equal(t, 1, cheapest)
	assert.True(t, res.HubOptions[0].IsCheapest)
	assert.Equal(t, 4, res.HubOptions[0].HubRating)
	assert.Equal(t, 3, res.HubOptions[2].HubRating)
	assert.Equal(t, "Dubai", res.HubOptions[0].HubCity)
	require.NotNil(t, res.HubOptions[0].DirectPrice)
	assert.Equal(t, 900.0, *res.HubOptions[0].DirectPrice)

	assert.Equal(t, 300.0, res.BestSavings)
	assert.Equal(t, 33.0, res.BestSavingsPercent)
	require.NotNil(t, res.RecommendedHub)
	assert.Equal(t, "DXB", *res.RecommendedHub)
}

func TestCompare_DirectOnly(t *testing.T) {
	e := newTestEngine(t, []catalog.Route{
		{From: "CDG", To: "SYD", Type: catalog.RouteDirect, Price: 1650, Duration: 1320},
	}, nil)

	res := e.Compare("CDG", "SYD")
	require.True(t, res.Found)
	assert.Empty(t, res.HubOptions)
	assert.Nil(t, res.RecommendedHub)
	assert.Zero(t, res.BestSavings)
}

func TestCompare_HubOnlyUnknownHubAirportFallsBackToCode(t *testing.T) {
	e := newTestEngine(t, []catalog.Route{
		{From: "CDG", To: "SYD", Type: catalog.RouteHub, Via: "SIN", Price: 1100, Duration: 1380},
	}, nil)

	res := e.Compare("CDG", "SYD")
	require.True(t, res.Found)
	assert.Nil(t, res.Direct)
	require.Len(t, res.HubOptions, 1)
	assert.Nil(t, res.HubOptions[0].DirectPrice)
	assert.Equal(t, 0, res.HubOptions[0].HubRating)
}

func TestRecommend_EndToEndCDGBKK(t *testing.T) {
	e := newTestEngine(t, []catalog.Route{
		{From: "CDG", To: "BKK", Type: catalog.RouteDirect, Price: 900, Duration: 690},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DXB", Price: 600, Duration: 860, Savings: 300, SavingsPercent: 33},
	}, nil)

	res := e.Recommend("CDG", "BKK")
	require.NotNil(t, res.Origin)
	require.NotNil(t, res.DirectRoute)
	assert.Equal(t, 900.0, res.DirectRoute.Price)

	require.Len(t, res.HubRoutes, 1)
	assert.Equal(t, 4, res.HubRoutes[0].HubRating)
	require.NotNil(t, res.BestRecommendation)
	assert.Equal(t, "DXB", res.BestRecommendation.Via)
	assert.Equal(t, 300.0, res.PotentialSavings)
	require.NotNil(t, res.BestRecommendation.HubDetails)
	assert.Equal(t, 1, res.BestRecommendation.HubDetails.RouteCount)
}

func TestRecommend_RanksByScore(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), nil)

	res := e.Recommend("CDG", "BKK")
	require.Len(t, res.HubRoutes, 3)
	for i := 1; i < len(res.HubRoutes); i++ {
		assert.GreaterOrEqual(t, res.HubRoutes[i-1].Score, res.HubRoutes[i].Score)
	}
	assert.Equal(t, "DXB", res.BestRecommendation.Via)
	assert.Equal(t, res.HubRoutes[0].Savings, res.PotentialSavings)
}

func TestRecommend_HigherSavingsWins(t *testing.T) {
	e := newTestEngine(t, []catalog.Route{
		{From: "CDG", To: "BKK", Type: catalog.RouteDirect, Price: 300, Duration: 600},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DOH", Price: 250, Duration: 700, Savings: 50, SavingsPercent: 17},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DXB", Price: 200, Duration: 700, Savings: 100, SavingsPercent: 33},
	}, nil)

	res := e.Recommend("CDG", "BKK")
	require.NotNil(t, res.BestRecommendation)
	assert.Equal(t, "DXB", res.BestRecommendation.Via)
	assert.Equal(t, 100.0, res.PotentialSavings)
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	e := newTestEngine(t, []catalog.Route{
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DOH", Price: 700, Duration: 800},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "DXB", Price: 650, Duration: 800},
		{From: "CDG", To: "BKK", Type: catalog.RouteHub, Via: "IST", Price: 600, Duration: 800},
	}, nil)

	res := e.Recommend("CDG", "BKK")
	assert.Equal(t, []string{"DOH", "DXB", "IST"}, vias(res.HubRoutes))
}

func TestRecommend_NoHubRoutes(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), nil)

	res := e.Recommend("SYD", "CDG")
	assert.Nil(t, res.BestRecommendation)
	assert.Zero(t, res.PotentialSavings)
	assert.Empty(t, res.HubRoutes)
	assert.Nil(t, res.DirectRoute)
}

func TestHubDetails(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), map[string]catalog.HubInfo{
		"DXB": {Description: "desert hub", AvgSavings: 5, Rating: 1},
		"SIN": {AvgSavings: 25},
		"IST": {AvgSavings: 10, Rating: 5},
	})

	d, ok := e.HubDetails("dxb")
	require.True(t, ok)
	assert.Equal(t, "desert hub", d.Description)
	assert.Equal(t, 33.0, d.AvgSavings, "routes override static savings")
	assert.Equal(t, 4, d.Rating)
	assert.Equal(t, 1, d.RouteCount)

	d, ok = e.HubDetails("SIN")
	require.True(t, ok)
	assert.Equal(t, 25.0, d.AvgSavings)
	assert.Equal(t, 3, d.Rating, "rating derived from static savings")
	assert.Zero(t, d.RouteCount)

	_, ok = e.HubDetails("CDG")
	assert.False(t, ok, "not a hub")
	_, ok = e.HubDetails("ZZZ")
	assert.False(t, ok)
}

func TestHubsRanked(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), nil)

	ranked := e.HubsRanked()
	require.Len(t, ranked, 4)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Rating, ranked[i].Rating)
	}
	assert.Equal(t, "DXB", ranked[0].ID)
}

func TestSearchRoutes(t *testing.T) {
	e := newTestEngine(t, cdgBkkRoutes(), nil)

	all := e.SearchRoutes(catalog.RouteFilter{})
	require.Len(t, all, 4)
	assert.Zero(t, all[0].Score, "direct routes are not scored")
	assert.Nil(t, all[0].HubAirport)

	hubs := e.SearchRoutes(catalog.RouteFilter{From: "cdg", Type: catalog.RouteHub, MinSavings: 200})
	require.Len(t, hubs, 2)
	for _, h := range hubs {
		assert.Positive(t, h.Score)
		require.NotNil(t, h.HubAirport)
		assert.Equal(t, "Paris", h.FromAirport.City)
	}

	viaDXB := e.SearchRoutes(catalog.RouteFilter{Hub: "dxb"})
	require.Len(t, viaDXB, 1)
}

func TestAvailableRoutes(t *testing.T) {
	routes := append(cdgBkkRoutes(),
		catalog.Route{From: "CDG", To: "SYD", Type: catalog.RouteDirect, Price: 1650, Duration: 1320})
	e := newTestEngine(t, routes, nil)

	pairs := e.AvailableRoutes()
	require.Len(t, pairs, 2)
	assert.Equal(t, "BKK", pairs[0].To)
	assert.True(t, pairs[0].HasDirect)
	assert.True(t, pairs[0].HasHub)
	assert.Equal(t, 3, pairs[0].HubCount)
	assert.False(t, pairs[1].HasHub)
	assert.Equal(t, "Sydney", pairs[1].ToAirport.City)
}

func vias(opts []HubOption) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Via)
	}
	return out
}
