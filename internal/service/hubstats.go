package service

import (
	"math"

	"github.com/smarthub/hubfare/internal/scoring"
)

// HubStats aggregates savings over every catalog route via hubID. A hub with
// no routes yields a zeroed record.
func (e *Engine) HubStats(hubID string) HubStats {
	hubID = NormalizeCode(hubID)
	st := HubStats{HubID: hubID, Routes: []HubStatsRoute{}}
	if a, ok := e.cat.Airport(hubID); ok {
		st.HubName = a.Name
	}

	routes := e.cat.RoutesVia(hubID)
	if len(routes) == 0 {
		return st
	}

	var sumSavings, sumPct float64
	var sumRating int
	st.MinSavings = math.Inf(1)
	for _, r := range routes {
		rating := scoring.Rating(r.SavingsPercent)
		sumSavings += r.Savings
		sumPct += r.SavingsPercent
		sumRating += rating
		st.MaxSavings = math.Max(st.MaxSavings, r.Savings)
		st.MinSavings = math.Min(st.MinSavings, r.Savings)
		st.MaxSavingsPercent = math.Max(st.MaxSavingsPercent, r.SavingsPercent)
		st.Routes = append(st.Routes, HubStatsRoute{
			From:           r.From,
			To:             r.To,
			Savings:        r.Savings,
			SavingsPercent: r.SavingsPercent,
			Rating:         rating,
		})
	}

	n := float64(len(routes))
	st.RouteCount = len(routes)
	st.AvgSavings = scoring.Round(sumSavings / n)
	st.AvgSavingsPercent = scoring.Round(sumPct / n)
	// rating is averaged per route, not derived from the average percentage
	st.AvgRating = scoring.Round(float64(sumRating)/n*10) / 10
	return st
}
