package log

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger writes one access log line per request.
func Logger(l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.Logger received a nil *zap.Logger")
	}

	logger := l.WithOptions(zap.AddCallerSkip(1)).Named(name)

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			defer func() {
				status := ww.Status()
				fields := []zap.Field{
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Int("status", status),
					zap.Int("response_bytes", ww.BytesWritten()),
					zap.Duration("latency", time.Since(t1)),
					zap.String("user_agent", r.UserAgent()),
				}

				switch {
				case status >= 500:
					logger.Error("request completed", fields...)
				case status >= 400:
					logger.Warn("request completed", fields...)
				case isQuiet(r):
					logger.Debug("request completed", fields...)
				default:
					logger.Info("request completed", fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// health, metrics и статика — в debug
func isQuiet(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	switch r.URL.Path {
	case "/health", "/metrics":
		return true
	}
	return strings.HasPrefix(r.URL.Path, "/static/")
}
