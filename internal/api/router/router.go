package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "locadora/docs" // registra a especificação Swagger
	"locadora/internal/api/agency"
	"locadora/internal/api/search"
	"locadora/internal/pkg/cache"
	"locadora/internal/pkg/logger"
	"locadora/internal/pkg/metrics"
	"locadora/internal/pkg/middleware"
	"locadora/web"
)

// Options reúne os parâmetros de borda do roteador vindos da configuração.
type Options struct {
	AllowedOrigins  []string
	RateLimit       int
	RateLimitPeriod time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
// cacheClient nil desliga o rate limiting de /pesquisa; m nil desliga as métricas.
func NewRouter(
	agencyHandler *agency.Handler,
	searchHandler *search.Handler,
	m *metrics.Metrics,
	cacheClient cache.Client,
	opts Options,
	log logger.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares Globais ---
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	// Métricas ficam fora do Recoverer para contar os 500 de panics recuperados.
	if m != nil {
		r.Use(m.Middleware)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// --- 2. Health Check, Métricas e Documentação ---
	r.Get("/ping", PingHandler)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 3. Rotas de Locadoras ---
	r.Route("/locadoras", agencyHandler.Routes)

	// --- 4. Pesquisa (com rate limit por IP quando há Redis) ---
	if cacheClient != nil {
		r.With(middleware.RateLimiter(cacheClient, opts.RateLimit, opts.RateLimitPeriod, log)).
			Get("/pesquisa", searchHandler.SearchHandler)
	} else {
		r.Get("/pesquisa", searchHandler.SearchHandler)
	}

	// --- 5. Frontend ---
	r.Handle("/*", web.Handler())

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
