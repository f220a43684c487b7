package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, _ := url.PathUnescape(r.RequestURI)
		log.Info().
			Str("method", r.Method).
			Str("path", path).
			Msg("request")
		next.ServeHTTP(w, r)
	})
}

// ConfigureRouting builds the server's route table: a root info endpoint, a
// health check, and the /v1/roll surface over CompoundRoll.Parse/Evaluate.
func ConfigureRouting() *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)

	r.HandleFunc("/", RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", HealthHandler).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/roll", RollPostHandler).Methods(http.MethodPost)
	v1.HandleFunc("/roll/{expression}", RollGetHandler).Methods(http.MethodGet)

	return r
}
