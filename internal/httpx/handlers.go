package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smarthub/hubfare/internal/catalog"
	"github.com/smarthub/hubfare/internal/service"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

type searchData struct {
	service.Recommendation
	Comparison service.Comparison `json:"comparison"`
}

type hubData struct {
	service.HubDetails
	PriceStats service.HubStats `json:"priceStats"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// fromTo reads the required from/to query parameters, upper-cased.
func fromTo(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	from := service.NormalizeCode(q.Get("from"))
	to := service.NormalizeCode(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, `Both "from" and "to" parameters are required`)
		return "", "", false
	}
	return from, to, true
}

func HealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Service:   "hubfare",
			Version:   version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func AirportsHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, e.Catalog().Airports())
	}
}

func HubsHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, e.Catalog().Hubs())
	}
}

func HubsRankedHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, e.HubsRanked())
	}
}

func HubHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := service.NormalizeCode(r.PathValue("id"))
		details, ok := e.HubDetails(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Hub not found")
			return
		}
		writeData(w, hubData{HubDetails: details, PriceStats: e.HubStats(id)})
	}
}

func RoutesHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := catalog.RouteFilter{
			From: q.Get("from"),
			To:   q.Get("to"),
			Type: catalog.RouteType(q.Get("type")),
			Hub:  q.Get("hub"),
		}
		if s := q.Get("minSavings"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "minSavings must be a number")
				return
			}
			f.MinSavings = v
		}
		writeList(w, e.SearchRoutes(f))
	}
}

func AvailableRoutesHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, e.AvailableRoutes())
	}
}

func CompareHandler(e *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, ok := fromTo(w, r)
		if !ok {
			return
		}
		writeData(w, e.Compare(from, to))
	}
}

// SearchHandler sends dated searches to the bridge and everything else to the
// catalog engine.
func SearchHandler(e *service.Engine, b *service.Bridge, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, ok := fromTo(w, r)
		if !ok {
			return
		}

		if date := r.URL.Query().Get("date"); date != "" {
			writeJSON(w, http.StatusOK, b.FetchOrSimulate(r.Context(), from, to, date))
			return
		}

		cat := e.Catalog()
		if _, ok := cat.Airport(from); !ok {
			writeError(w, http.StatusNotFound, "Airport not found in catalog")
			return
		}
		if _, ok := cat.Airport(to); !ok {
			writeError(w, http.StatusNotFound, "Airport not found in catalog")
			return
		}

		// Recommend and Compare never fail; the group only reports a request
		// cancelled before either side started.
		var data searchData
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data.Recommendation = e.Recommend(from, to)
			return nil
		})
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data.Comparison = e.Compare(from, to)
			return nil
		})
		if err := g.Wait(); err != nil {
			log.Error("search failed", zap.String("from", from), zap.String("to", to), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to complete search. "+err.Error())
			return
		}
		writeData(w, data)
	}
}

func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	}
}
