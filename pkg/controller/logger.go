package controller

import (
	"directory/pkg/logger"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// routePattern returns the chi route matched by r, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}

	return "unmatched"
}

// status reports the code written through ww; handlers that never call
// WriteHeader answer 200.
func status(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}

	return ww.Status()
}

// clientIP strips the port from RemoteAddr. Mount middleware.RealIP first to
// honour X-Forwarded-For and X-Real-IP.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// WithLogger attaches a logger carrying the request ID to the request context,
// echoes the ID in the response and writes an access log entry once the
// handler returns. The ID comes from middleware.RequestID when it runs earlier
// in the chain; otherwise a UUID is generated.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.WithFields(r.Context(), zap.String("request_id", requestID))
		w.Header().Set(middleware.RequestIDHeader, requestID)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(ctx)

		next.ServeHTTP(ww, r)

		logger.Info(ctx, "Access log",
			zap.Int("status_code", status(ww)),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", clientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("method", r.Method),
			zap.String("route", routePattern(r)),
			zap.String("url", r.URL.String()),
		)
	})
}
