package service

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/smarthub/hubfare/internal/catalog"
	"github.com/smarthub/hubfare/internal/providers"
	"github.com/smarthub/hubfare/internal/scoring"
)

const (
	defaultProviderTimeout = 10 * time.Second
	msgNoFlights           = "No flights found"
)

// FlightSearchResult is the external shape of a dated search.
type FlightSearchResult struct {
	Success     bool            `json:"success"`
	IsSimulated bool            `json:"isSimulated"`
	Error       string          `json:"error,omitempty"`
	Data        *Recommendation `json:"data,omitempty"`
}

// outcome is one of liveOutcome, noFlightsOutcome or simulatedOutcome.
type outcome interface {
	result() FlightSearchResult
}

type liveOutcome struct{ rec Recommendation }

type noFlightsOutcome struct{}

type simulatedOutcome struct{ rec Recommendation }

func (o liveOutcome) result() FlightSearchResult {
	return FlightSearchResult{Success: true, Data: &o.rec}
}

func (noFlightsOutcome) result() FlightSearchResult {
	return FlightSearchResult{Success: false, Error: msgNoFlights}
}

func (o simulatedOutcome) result() FlightSearchResult {
	return FlightSearchResult{Success: true, IsSimulated: true, Data: &o.rec}
}

// Bridge prices a dated journey from the live provider and falls back to a
// deterministic simulation when the provider is unconfigured or fails.
type Bridge struct {
	provider providers.FlightProvider
	cat      *catalog.Catalog
	timeout  time.Duration
	log      *zap.Logger
	jitter   func(n int) int
}

// NewBridge builds a bridge. cat may be nil; it only enriches airport data.
func NewBridge(p providers.FlightProvider, cat *catalog.Catalog, timeout time.Duration, log *zap.Logger) *Bridge {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		provider: p,
		cat:      cat,
		timeout:  timeout,
		log:      log,
		jitter:   rand.IntN,
	}
}

// FetchOrSimulate never returns an error: provider failures turn into a
// simulated result and an empty provider answer into Success=false.
func (b *Bridge) FetchOrSimulate(ctx context.Context, from, to, date string) FlightSearchResult {
	from, to = NormalizeCode(from), NormalizeCode(to)
	return b.resolve(ctx, from, to, date).result()
}

func (b *Bridge) resolve(ctx context.Context, from, to, date string) outcome {
	if b.provider == nil || !b.provider.Configured() {
		b.log.Info("provider credential missing, using simulation",
			zap.String("from", from), zap.String("to", to))
		return simulatedOutcome{rec: b.simulate(from, to)}
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	start := time.Now()
	its, err := b.provider.Search(ctx, from, to, date)
	if err != nil {
		b.log.Warn("provider search failed, falling back to simulation",
			zap.String("provider", b.provider.Name()),
			zap.String("from", from), zap.String("to", to), zap.String("date", date),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return simulatedOutcome{rec: b.simulate(from, to)}
	}
	if len(its) == 0 {
		return noFlightsOutcome{}
	}
	b.log.Debug("provider search ok",
		zap.String("provider", b.provider.Name()),
		zap.Int("itineraries", len(its)),
		zap.Duration("elapsed", time.Since(start)))
	return liveOutcome{rec: b.fromItineraries(from, to, its)}
}

func (b *Bridge) fromItineraries(from, to string, its []providers.Itinerary) Recommendation {
	var direct *providers.Itinerary
	var connecting []providers.Itinerary
	for i := range its {
		switch n := len(its[i].Legs); {
		case n == 1:
			if direct == nil || its[i].Price < direct.Price {
				direct = &its[i]
			}
		case n > 1:
			connecting = append(connecting, its[i])
		}
	}

	rec := Recommendation{
		Origin:      b.knownAirport(from, its[0].CityFrom),
		Destination: b.knownAirport(to, its[0].CityTo),
		HubRoutes:   make([]HubOption, 0, len(connecting)),
	}

	var directPrice *float64
	if direct != nil {
		p := direct.Price
		directPrice = &p
		rec.DirectRoute = &DirectSummary{Price: direct.Price, Duration: minutes(direct.DurationSec)}
	}

	for _, it := range connecting {
		first := it.Legs[0]
		hub := b.knownAirport(first.FlyTo, first.CityTo)

		var savings, pct float64
		if directPrice != nil {
			savings = math.Max(0, *directPrice-it.Price)
			pct = scoring.Percent(savings, *directPrice)
		}
		rating := scoring.Rating(pct)

		opt := HubOption{
			Via:            first.FlyTo,
			HubName:        hub.Name,
			HubCity:        hub.City,
			HubCountry:     hub.Country,
			Price:          it.Price,
			Duration:       minutes(it.DurationSec),
			Savings:        savings,
			SavingsPercent: pct,
			HubRating:      rating,
			Score:          scoring.LiveScore(rating, pct),
			DirectPrice:    directPrice,
			HubInfo:        hub,
		}
		if hub.Coords != (catalog.Coords{}) {
			coords := hub.Coords
			opt.HubCoords = &coords
		}
		rec.HubRoutes = append(rec.HubRoutes, opt)
	}

	rankLive(&rec)
	return rec
}

// rankLive sorts by the additive score and marks the winner.
func rankLive(rec *Recommendation) {
	sort.SliceStable(rec.HubRoutes, func(i, j int) bool {
		return rec.HubRoutes[i].Score > rec.HubRoutes[j].Score
	})
	if len(rec.HubRoutes) == 0 {
		return
	}
	rec.HubRoutes[0].IsCheapest = true
	best := rec.HubRoutes[0]
	rec.BestRecommendation = &best
	rec.PotentialSavings = best.Savings
}

// knownAirport prefers catalog data and otherwise builds a minimal airport
// from what the provider returned.
func (b *Bridge) knownAirport(id, city string) *catalog.Airport {
	if b.cat != nil {
		if a, ok := b.cat.Airport(id); ok {
			return &a
		}
	}
	return &catalog.Airport{ID: id, Name: city, City: city}
}

func minutes(sec int) int {
	return int(scoring.Round(float64(sec) / 60))
}
