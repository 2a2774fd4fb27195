package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Health        *HealthHandler
	Assessment    *AssessmentHandler
	Compatibility *CompatibilityHandler
	Matches       *MatchesHandler
	Journal       *JournalHandler
	Metrics       http.Handler
}

// NewRouter builds the HTTP route table. Middleware is attached by the
// caller via Use so probes and metrics stay inside the instrumented chain.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/live", deps.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", deps.Health.Ready).Methods(http.MethodGet)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics).Methods(http.MethodGet)
	}

	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/health", deps.Health.Health).Methods(http.MethodGet)

	v1.HandleFunc("/assessment/questions", deps.Assessment.Questions).Methods(http.MethodGet)
	v1.HandleFunc("/assessment", deps.Assessment.Submit).Methods(http.MethodPost)
	v1.HandleFunc("/profile", deps.Assessment.Profile).Methods(http.MethodGet)

	v1.HandleFunc("/compatibility/{userID}", deps.Compatibility.Compare).Methods(http.MethodGet)

	v1.HandleFunc("/matches/refresh", deps.Matches.Refresh).Methods(http.MethodPost)
	v1.HandleFunc("/matches", deps.Matches.List).Methods(http.MethodGet)
	v1.HandleFunc("/matches/{matchID}/opt-in", deps.Matches.OptIn).Methods(http.MethodPost)
	v1.HandleFunc("/matches/{matchID}/dismiss", deps.Matches.Dismiss).Methods(http.MethodPost)

	v1.HandleFunc("/journal", deps.Journal.Submit).Methods(http.MethodPost)
	v1.HandleFunc("/journal", deps.Journal.List).Methods(http.MethodGet)
	v1.HandleFunc("/journal/trend", deps.Journal.Trend).Methods(http.MethodGet)
	v1.HandleFunc("/burnout/history", deps.Journal.BurnoutHistory).Methods(http.MethodGet)

	return r
}
