package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"protmotif/internal/domain"
)

type ctxKey int

const userKey ctxKey = iota

// UserFrom returns the authenticated user stored on ctx by the auth
// middleware.
func UserFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// auth resolves the X-User-ID header to a stored user before calling next.
func (s *Server) auth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if raw == "" {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Missing X-User-ID header"})
			return
		}
		id, err := domain.ParseUserID(raw)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid user"})
			return
		}
		user, err := s.users.GetUser(r.Context(), id)
		switch {
		case domain.IsKind(err, domain.KindNotFound):
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid user"})
			return
		case err != nil:
			s.writeError(w, r, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// statusResponseWriter captures status and bytes written for logging.
type statusResponseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// accessLog logs each request with method, path, status, size and duration.
func accessLog(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w}
		next.ServeHTTP(srw, r)
		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", srw.status,
			"bytes", srw.written,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}
