package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// LoadMySQL reads the whole catalog once from a MySQL database.
//
// Expected tables:
//
//	airports(id, name, city, country, lon, lat, is_hub)
//	routes(id, from_id, to_id, type, price, duration_min, via, savings, savings_percent)
//	hub_details(hub_id, description, short_summary, avg_layover, total_flights,
//	            features, popular_routes, avg_savings, rating)
//
// routes.id fixes catalog order. features and popular_routes are comma
// separated. Every hub_details column but hub_id may be NULL.
func LoadMySQL(ctx context.Context, dsn string) (*Catalog, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	return loadDB(ctx, db)
}

func loadDB(ctx context.Context, db *sql.DB) (*Catalog, error) {
	s := store{db: db}
	airports, err := s.airports(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.routes(ctx)
	if err != nil {
		return nil, err
	}
	info, err := s.hubDetails(ctx)
	if err != nil {
		return nil, err
	}
	return New(airports, routes, info)
}

type store struct {
	db *sql.DB
}

func (s store) airports(ctx context.Context) ([]Airport, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, city, country, lon, lat, is_hub
        FROM airports
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	var out []Airport
	for rows.Next() {
		var a Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.Coords[0], &a.Coords[1], &a.IsHub); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s store) routes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT from_id, to_id, type, price, duration_min, via, savings, savings_percent
        FROM routes
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	var out []Route
	for rows.Next() {
		var (
			r       Route
			typ     string
			via     sql.NullString
			savings sql.NullFloat64
			pct     sql.NullFloat64
		)
		if err := rows.Scan(&r.From, &r.To, &typ, &r.Price, &r.Duration, &via, &savings, &pct); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		r.Type = RouteType(typ)
		r.Via = via.String
		r.Savings = savings.Float64
		r.SavingsPercent = pct.Float64
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s store) hubDetails(ctx context.Context) (map[string]HubInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT hub_id, description, short_summary, avg_layover, total_flights,
               features, popular_routes, avg_savings, rating
        FROM hub_details
    `)
	if err != nil {
		return nil, fmt.Errorf("query hub details: %w", err)
	}
	defer rows.Close()

	out := make(map[string]HubInfo)
	for rows.Next() {
		var (
			id                 string
			h                  HubInfo
			desc, layover      sql.NullString
			features, popular  sql.NullString
			summary, totalFlts sql.NullString
			avgSavings         sql.NullFloat64
			rating             sql.NullInt64
		)
		if err := rows.Scan(&id, &desc, &summary, &layover, &totalFlts,
			&features, &popular, &avgSavings, &rating); err != nil {
			return nil, fmt.Errorf("scan hub details: %w", err)
		}
		h.Description = desc.String
		h.AvgLayover = layover.String
		h.AvgSavings = avgSavings.Float64
		h.Rating = int(rating.Int64)
		h.ShortSummary = summary.String
		h.TotalFlights = totalFlts.String
		h.Features = splitList(features.String)
		h.PopularRoutes = splitList(popular.String)
		out[id] = h
	}
	return out, rows.Err()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
