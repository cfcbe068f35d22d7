package service

import (
	"strings"

	"github.com/smarthub/hubfare/internal/catalog"
)

// Engine answers comparison, recommendation and hub questions from the
// static catalog. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

func (e *Engine) airport(id string) *catalog.Airport {
	a, ok := e.cat.Airport(id)
	if !ok {
		return nil
	}
	return &a
}

// hubOption fills the hub airport fields of a catalog hub route.
func (e *Engine) hubOption(r catalog.Route, directPrice *float64) HubOption {
	opt := HubOption{
		Via:            r.Via,
		HubName:        r.Via,
		Price:          r.Price,
		Duration:       r.Duration,
		Savings:        r.Savings,
		SavingsPercent: r.SavingsPercent,
		DirectPrice:    directPrice,
	}
	if hub := e.airport(r.Via); hub != nil {
		opt.HubName = hub.Name
		opt.HubCity = hub.City
		opt.HubCountry = hub.Country
		coords := hub.Coords
		opt.HubCoords = &coords
		opt.HubInfo = hub
	}
	return opt
}

// NormalizeCode upper-cases and trims an airport code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
