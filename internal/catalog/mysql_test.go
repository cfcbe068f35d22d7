package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	airportsQuery   = `SELECT id, name, city, country, lon, lat, is_hub\s+FROM airports\s+ORDER BY id`
	routesQuery     = `SELECT from_id, to_id, type, price, duration_min, via, savings, savings_percent\s+FROM routes\s+ORDER BY id`
	hubDetailsQuery = `SELECT hub_id, description, short_summary, avg_layover, total_flights,\s+features, popular_routes, avg_savings, rating\s+FROM hub_details`
)

func expectAirportsAndRoutes(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(airportsQuery).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "city", "country", "lon", "lat", "is_hub"}).
			AddRow("BKK", "Suvarnabhumi", "Bangkok", "Thailand", 100.75, 13.68, false).
			AddRow("CDG", "Paris CDG", "Paris", "France", 2.54, 49.0, false).
			AddRow("DXB", "Dubai Intl", "Dubai", "UAE", 55.36, 25.25, true))

	mock.ExpectQuery(routesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"from_id", "to_id", "type", "price", "duration_min", "via", "savings", "savings_percent"}).
			AddRow("CDG", "BKK", "direct", 900.0, 690, nil, nil, nil).
			AddRow("CDG", "BKK", "hub", 600.0, 860, "DXB", 300.0, 33.0))
}

func TestLoadDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectAirportsAndRoutes(mock)
	mock.ExpectQuery(hubDetailsQuery).WillReturnRows(
		sqlmock.NewRows([]string{"hub_id", "description", "short_summary", "avg_layover", "total_flights",
			"features", "popular_routes", "avg_savings", "rating"}).
			AddRow("DXB", "Gulf hub", "Cheap to Asia", "2h", "1200", "lounges, hotel", "BKK", 30.0, 4))

	c, err := loadDB(context.Background(), db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	a, ok := c.Airport("DXB")
	require.True(t, ok)
	assert.True(t, a.IsHub)
	assert.Equal(t, Coords{55.36, 25.25}, a.Coords)

	direct, ok := c.CheapestDirect("CDG", "BKK")
	require.True(t, ok)
	assert.Equal(t, 900.0, direct.Price)
	assert.Empty(t, direct.Via)

	hub := c.HubRoutes("CDG", "BKK")
	require.Len(t, hub, 1)
	assert.Equal(t, "DXB", hub[0].Via)
	assert.Equal(t, 33.0, hub[0].SavingsPercent)

	info, ok := c.HubInfo("DXB")
	require.True(t, ok)
	assert.Equal(t, "Gulf hub", info.Description)
	assert.Equal(t, []string{"lounges", "hotel"}, info.Features)
	assert.Equal(t, 4, info.Rating)
}

func TestLoadDB_NullHubDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectAirportsAndRoutes(mock)
	mock.ExpectQuery(hubDetailsQuery).WillReturnRows(
		sqlmock.NewRows([]string{"hub_id", "description", "short_summary", "avg_layover", "total_flights",
			"features", "popular_routes", "avg_savings", "rating"}).
			AddRow("DXB", nil, nil, nil, nil, nil, nil, nil, nil))

	c, err := loadDB(context.Background(), db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	info, ok := c.HubInfo("DXB")
	require.True(t, ok)
	assert.Empty(t, info.Description)
	assert.Empty(t, info.AvgLayover)
	assert.Nil(t, info.Features)
	assert.Zero(t, info.Rating)
}

func TestLoadDB_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(airportsQuery).WillReturnError(assert.AnError)

	_, err = loadDB(context.Background(), db)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "query airports")
}
