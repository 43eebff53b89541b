package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "mivet-auth/docs" // registro del spec OpenAPI generado por swag
	mem "mivet-auth/internal/adapters/storage/memory"
	pg "mivet-auth/internal/adapters/storage/postgres"
	"mivet-auth/internal/domain/auth"
	"mivet-auth/internal/platform/logger"
)

type Options struct {
	// SecretKey firma los tokens de sesión. main falla rápido si está
	// vacía; acá se asume presente.
	SecretKey string

	// Opcional: si viene DB usa Postgres. Si no, in-memory (modo dev).
	DB *sql.DB

	// Opcional: store explícito (tests). Tiene prioridad sobre DB.
	Store auth.Store

	Logger logger.Logger

	// Timeout por request; default 15s.
	RequestTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	r.Use(chimw.Timeout(timeout))

	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{})
	}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "API activa y funcionando.",
		})
	})

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	store := opts.Store
	if store == nil {
		if opts.DB != nil {
			store = pg.NewAuthStore(opts.DB)
		} else {
			store = mem.NewAuthStore()
		}
	}

	codec := auth.NewTokenCodec(opts.SecretKey)
	svc := auth.NewService(store, codec, log)
	auth.RegisterRoutes(r, svc)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
