package registry

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vango-dev/termkit/internal/errors"
)

// NewHandler serves provider using the registry wire layout:
//
//	GET /manifest.json
//	GET /components/{name}/{file...}
//	GET /healthz
//
// Any HTTPSource can read from it.
func NewHandler(provider Provider, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "registry-server")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	r.Get("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		manifest, err := provider.Catalog(r.Context())
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(manifest)
	})

	r.Get("/components/{name}/*", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		file := chi.URLParam(r, "*")

		d, err := provider.Lookup(r.Context(), name)
		if err != nil {
			status := http.StatusBadGateway
			if errors.HasCode(err, "E110") {
				status = http.StatusNotFound
			}
			writeError(w, status, err)
			return
		}
		if !d.HasFile(file) {
			http.NotFound(w, r)
			return
		}

		files, err := provider.Fetch(r.Context(), &Descriptor{
			Name:    d.Name,
			Version: d.Version,
			Files:   []string{file},
		})
		if err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Termkit-Version", d.Version)
		w.Write(files[file])
	})

	return r
}

func writeError(w http.ResponseWriter, status int, err error) {
	http.Error(w, errors.Compact(err), status)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
