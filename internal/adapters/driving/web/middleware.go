package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/logger"
)

// limiter is a token bucket shared by all clients of the page.
// A nil limiter allows everything.
type limiter struct {
	bucket *rate.Limiter
}

func newLimiter(perSecond float64, burst int) *limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &limiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (l *limiter) allow() bool {
	return l == nil || l.bucket.Allow()
}

// rateLimit rejects operations beyond the configured rate with 429 and a
// page explaining why.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.allow() {
			next.ServeHTTP(w, r)
			return
		}

		op := domain.OpSearch
		if r.URL.Path == "/ask" {
			op = domain.OpAsk
		}
		logger.Warn("%s rate limited (request %s)", op, middleware.GetReqID(r.Context()))

		page, f := s.current()
		view := page.Page()
		view.Notice = &domain.Notice{
			Level:   domain.NoticeError,
			Title:   page.Labels().FailureTitle(op),
			Message: http.StatusText(http.StatusTooManyRequests),
		}
		w.Header().Set("Retry-After", "1")
		s.render(w, http.StatusTooManyRequests, page.Labels(), view, f)
	})
}

// requestLogger logs every request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			logger.Debug("%s %s -> %d in %s (request %s)",
				r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
		}()
		next.ServeHTTP(ww, r)
	})
}
