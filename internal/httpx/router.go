package httpx

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/smarthub/hubfare/internal/service"
)

const Version = "1.0.0"

type RouterOptions struct {
	CORSOrigins    []string
	StreamInterval time.Duration
	Logger         *zap.Logger
}

// NewRouter mounts every endpoint behind CORS and request logging.
func NewRouter(e *service.Engine, b *service.Bridge, opts RouterOptions) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	interval := opts.StreamInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthHandler(Version))
	mux.HandleFunc("GET /api/airports", AirportsHandler(e))
	mux.HandleFunc("GET /api/hubs", HubsHandler(e))
	mux.HandleFunc("GET /api/hubs/ranked", HubsRankedHandler(e))
	mux.HandleFunc("GET /api/hub/{id}", HubHandler(e))
	mux.HandleFunc("GET /api/routes", RoutesHandler(e))
	mux.HandleFunc("GET /api/routes/available", AvailableRoutesHandler(e))
	mux.HandleFunc("GET /api/search", SearchHandler(e, b, log))
	mux.HandleFunc("GET /api/compare", CompareHandler(e))
	mux.HandleFunc("GET /api/sse/{from}/{to}", SubscribeSSEHandler(b, interval, log)) // /api/sse/CDG/BKK?date=01/12/2026
	mux.HandleFunc("GET /api/ws/{from}/{to}", SubscribeWSHandler(b, interval, log))
	mux.HandleFunc("/", NotFoundHandler())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(logRequests(log, mux))
}

func logRequests(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
