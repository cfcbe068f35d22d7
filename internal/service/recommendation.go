package service

import (
	"sort"

	"github.com/smarthub/hubfare/internal/catalog"
	"github.com/smarthub/hubfare/internal/scoring"
)

// Recommend ranks the hub routes of a pair by HubScore, best first. Equal
// scores keep catalog order.
func (e *Engine) Recommend(from, to string) Recommendation {
	from, to = NormalizeCode(from), NormalizeCode(to)

	res := Recommendation{
		Origin:      e.airport(from),
		Destination: e.airport(to),
		HubRoutes:   []HubOption{},
	}

	var directPrice *float64
	var directDuration int
	if direct, ok := e.cat.CheapestDirect(from, to); ok {
		p := direct.Price
		directPrice = &p
		directDuration = direct.Duration
		res.DirectRoute = &DirectSummary{Price: direct.Price, Duration: direct.Duration}
	}

	for _, r := range e.cat.HubRoutes(from, to) {
		opt := e.hubOption(r, directPrice)
		opt.HubRating = scoring.Rating(r.SavingsPercent)
		opt.Score = scoring.HubScore(scoring.Candidate{
			SavingsPercent: r.SavingsPercent,
			Duration:       r.Duration,
			DirectDuration: directDuration,
		})
		if d, ok := e.HubDetails(r.Via); ok {
			opt.HubDetails = &d
		}
		res.HubRoutes = append(res.HubRoutes, opt)
	}
	sort.SliceStable(res.HubRoutes, func(i, j int) bool {
		return res.HubRoutes[i].Score > res.HubRoutes[j].Score
	})

	if len(res.HubRoutes) > 0 {
		best := res.HubRoutes[0]
		res.BestRecommendation = &best
		res.PotentialSavings = best.Savings
	}
	return res
}

// HubDetails reports a hub airport with its static info and a savings
// snapshot. Routes through the hub take precedence over the static figures.
func (e *Engine) HubDetails(hubID string) (HubDetails, bool) {
	hubID = NormalizeCode(hubID)
	a, ok := e.cat.Airport(hubID)
	if !ok || !a.IsHub {
		return HubDetails{}, false
	}
	info, _ := e.cat.HubInfo(hubID)
	routes := e.cat.RoutesVia(hubID)

	d := HubDetails{Airport: a, HubInfo: info, RouteCount: len(routes)}
	if len(routes) > 0 {
		var sum float64
		for _, r := range routes {
			sum += r.SavingsPercent
		}
		d.AvgSavings = scoring.Round(sum / float64(len(routes)))
		d.Rating = scoring.Rating(d.AvgSavings)
		return d, true
	}

	d.AvgSavings = info.AvgSavings
	d.Rating = info.Rating
	if d.Rating == 0 {
		d.Rating = scoring.Rating(d.AvgSavings)
	}
	return d, true
}

// HubsRanked returns every hub's details, highest rating first.
func (e *Engine) HubsRanked() []HubDetails {
	hubs := e.cat.Hubs()
	out := make([]HubDetails, 0, len(hubs))
	for _, h := range hubs {
		if d, ok := e.HubDetails(h.ID); ok {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out
}

// SearchRoutes filters the catalog and annotates each route with its airports
// and, for hub routes, its score.
func (e *Engine) SearchRoutes(f catalog.RouteFilter) []RouteView {
	f.From, f.To, f.Hub = NormalizeCode(f.From), NormalizeCode(f.To), NormalizeCode(f.Hub)

	routes := e.cat.Routes(f)
	out := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		v := RouteView{
			Route:       r,
			FromAirport: e.airport(r.From),
			ToAirport:   e.airport(r.To),
		}
		if r.Type == catalog.RouteHub {
			c := scoring.Candidate{SavingsPercent: r.SavingsPercent, Duration: r.Duration}
			if direct, ok := e.cat.CheapestDirect(r.From, r.To); ok {
				c.DirectDuration = direct.Duration
			}
			v.Score = scoring.HubScore(c)
			v.HubAirport = e.airport(r.Via)
		}
		out = append(out, v)
	}
	return out
}
