package service

import (
	"sort"

	"github.com/smarthub/hubfare/internal/catalog"
	"github.com/smarthub/hubfare/internal/scoring"
)

const msgNoRoutes = "No routes found for this journey"

// Compare lists the hub options of a pair cheapest first and reports the
// savings of the cheapest one. A pair without routes is not an error.
func (e *Engine) Compare(from, to string) Comparison {
	from, to = NormalizeCode(from), NormalizeCode(to)

	direct, hasDirect := e.cat.CheapestDirect(from, to)
	hubRoutes := e.cat.HubRoutes(from, to)
	if !hasDirect && len(hubRoutes) == 0 {
		return Comparison{Found: false, Message: msgNoRoutes, HubOptions: []HubOption{}}
	}

	var directPrice *float64
	var directDuration int
	res := Comparison{
		Found:       true,
		Origin:      e.airport(from),
		Destination: e.airport(to),
		HubOptions:  make([]HubOption, 0, len(hubRoutes)),
	}
	if hasDirect {
		p := direct.Price
		directPrice = &p
		directDuration = direct.Duration
		res.Direct = &DirectSummary{Price: direct.Price, Duration: direct.Duration}
	}

	cheapest := -1
	for i, r := range hubRoutes {
		if cheapest < 0 || r.Price < hubRoutes[cheapest].Price {
			cheapest = i
		}
	}

	for i, r := range hubRoutes {
		opt := e.hubOption(r, directPrice)
		opt.HubRating = scoring.Rating(r.SavingsPercent)
		opt.Score = scoring.HubScore(scoring.Candidate{
			SavingsPercent: r.SavingsPercent,
			Duration:       r.Duration,
			DirectDuration: directDuration,
		})
		opt.IsCheapest = i == cheapest
		res.HubOptions = append(res.HubOptions, opt)
	}
	sort.SliceStable(res.HubOptions, func(i, j int) bool {
		return res.HubOptions[i].Price < res.HubOptions[j].Price
	})

	if cheapest >= 0 {
		c := hubRoutes[cheapest]
		res.BestSavings = c.Savings
		res.BestSavingsPercent = c.SavingsPercent
		via := c.Via
		res.RecommendedHub = &via
	}
	return res
}

// AvailableRoutes lists every origin/destination pair in the catalog, in
// first-seen order.
func (e *Engine) AvailableRoutes() []RoutePair {
	var out []RoutePair
	index := make(map[[2]string]int)

	for _, r := range e.cat.Routes(catalog.RouteFilter{}) {
		key := [2]string{r.From, r.To}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, RoutePair{
				From:        r.From,
				To:          r.To,
				FromAirport: e.airport(r.From),
				ToAirport:   e.airport(r.To),
			})
		}
		switch r.Type {
		case catalog.RouteDirect:
			out[i].HasDirect = true
		case catalog.RouteHub:
			out[i].HasHub = true
			out[i].HubCount++
		}
	}
	return out
}
