package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"locadora/internal/pkg/cache"
	"locadora/internal/pkg/logger"
)

// RateLimiter limita cada IP a `limit` requisições por janela `duration`,
// com o contador guardado no Redis.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr // RealIP pode ter deixado só o endereço
			}
			key := "rate-limit:" + ip

			// INCR primeiro e comparação depois: requisições concorrentes do mesmo IP
			// recebem contagens distintas e nunca passam do limite juntas.
			count, err := client.IncrWithExpiry(r.Context(), key, duration)
			if err != nil {
				log.Error("Falha ao incrementar contador de rate limit.", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if count > int64(limit) {
				log.Warn("Rate limit excedido.", map[string]interface{}{"ip": ip, "path": r.URL.Path})
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
