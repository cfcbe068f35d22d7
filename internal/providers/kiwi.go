package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/smarthub/hubfare/internal/config"
)

// keys shipped in sample configs; treated as no key at all
var placeholderKeys = map[string]bool{
	"YOUR_KIWI_API_KEY": true,
	"votre_cle_api_ici": true,
}

type Kiwi struct {
	host       string
	searchPath string
	apiKey     string
	client     *http.Client
}

func NewKiwi(cfg *config.Config) *Kiwi {
	return &Kiwi{host: cfg.KiwiURL,
		searchPath: "/v2/search",
		apiKey:     cfg.KiwiAPIKey,
		client:     http.DefaultClient,
	}
}

func (k *Kiwi) Name() string { return "kiwi" }

func (k *Kiwi) Configured() bool {
	return k.apiKey != "" && !placeholderKeys[k.apiKey]
}

type kiwiPayload struct {
	Data []struct {
		Price    float64 `json:"price"`
		CityFrom string  `json:"cityFrom"`
		CityTo   string  `json:"cityTo"`
		Duration struct {
			Total int `json:"total"` // seconds
		} `json:"duration"`
		Route []struct {
			FlyFrom  string `json:"flyFrom"`
			FlyTo    string `json:"flyTo"`
			CityFrom string `json:"cityFrom"`
			CityTo   string `json:"cityTo"`
		} `json:"route"`
	} `json:"data"`
}

func (k *Kiwi) Search(ctx context.Context, origin, destination, date string) ([]Itinerary, error) {
	if !k.Configured() {
		return nil, ErrMissingCredential
	}

	q := url.Values{}
	q.Set("fly_from", origin)
	q.Set("fly_to", destination)
	q.Set("date_from", date)
	q.Set("date_to", date)
	q.Set("curr", "USD")
	q.Set("limit", "20")
	u := k.host + k.searchPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("kiwi request: %w", err)
	}
	req.Header.Set("apikey", k.apiKey)
	req.Header.Set("accept", "application/json")

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("kiwi search: %s", resp.Status)
	}

	var payload kiwiPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("kiwi decode: %w", err)
	}

	out := make([]Itinerary, 0, len(payload.Data))
	for _, d := range payload.Data {
		if len(d.Route) == 0 {
			continue
		}
		legs := make([]Leg, 0, len(d.Route))
		for _, r := range d.Route {
			legs = append(legs, Leg{FlyFrom: r.FlyFrom, FlyTo: r.FlyTo, CityFrom: r.CityFrom, CityTo: r.CityTo})
		}
		out = append(out, Itinerary{
			Price:       d.Price,
			DurationSec: d.Duration.Total,
			CityFrom:    d.CityFrom,
			CityTo:      d.CityTo,
			Legs:        legs,
		})
	}
	return out, nil
}
