//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	gorillamux "github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/foundermind/foundermind-backend/internal/adapter/notify"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/burnoutscore"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/journalentry"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/peermatch"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/profile"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/foundermind/foundermind-backend/internal/adapter/postgres/user"
	"github.com/foundermind/foundermind-backend/internal/adapter/provider/insightstub"
	"github.com/foundermind/foundermind-backend/internal/adapter/pseudonym"
	authpkg "github.com/foundermind/foundermind-backend/internal/auth"
	"github.com/foundermind/foundermind-backend/internal/config"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/assessment"
	"github.com/foundermind/foundermind-backend/internal/service/compatibility"
	"github.com/foundermind/foundermind-backend/internal/service/journal"
	"github.com/foundermind/foundermind-backend/internal/service/matching"
	"github.com/foundermind/foundermind-backend/internal/transport/middleware"
	"github.com/foundermind/foundermind-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	profiles := profile.New(pool)
	matches := peermatch.New(pool)
	entries := journalentry.New(pool)
	scores := burnoutscore.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "foundermind-test", 15*time.Minute)

	pseudonyms := pseudonym.NewGenerator()
	assessmentSvc := assessment.NewService(logger, profiles, users, insightstub.NewStub(), pseudonyms, txm)
	compatibilitySvc := compatibility.NewService(logger, profiles)
	matchingSvc := matching.NewService(logger, profiles, users, matches, notify.NewLogNotifier(logger), txm, domain.MatchingRules{
		SimilarityFloor:        60,
		ArchetypeBonus:         10,
		SharedDimensionEpsilon: 10,
		MaxMatches:             10,
	})
	journalSvc := journal.NewService(logger, entries, scores, profiles, users, pseudonyms, txm)

	rateLimiter, err := middleware.NewRateLimiter(config.RateLimitConfig{
		RPS:       1000,
		Burst:     1000,
		CacheSize: 1024,
	})
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	router := rest.NewRouter(rest.RouterDeps{
		Health:        rest.NewHealthHandler(pool, "test-version"),
		Assessment:    rest.NewAssessmentHandler(assessmentSvc, logger),
		Compatibility: rest.NewCompatibilityHandler(compatibilitySvc, logger),
		Matches:       rest.NewMatchesHandler(matchingSvc, logger),
		Journal:       rest.NewJournalHandler(journalSvc, logger),
		Metrics:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	router.Use(gorillamux.MiddlewareFunc(metrics.Instrument()))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		rateLimiter.Limit(),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// newUserToken mints a JWT for a fresh user ID. The user row itself is
// created lazily on the first assessment submission.
func newUserToken(t *testing.T, ts *testServer) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	token, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return userID, token
}

// apiRequest sends a JSON request and returns the status code plus the
// decoded body. A nil body sends no payload; an empty token sends no
// Authorization header.
func (ts *testServer) apiRequest(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		result = nil
	}
	return resp.StatusCode, result
}

// uniformAnswers builds a full answer sheet with the same code everywhere.
func uniformAnswers(code string) []string {
	answers := make([]string, domain.AnswerCount)
	for i := range answers {
		answers[i] = code
	}
	return answers
}

// submitAssessment completes the questionnaire for the token's user and
// returns the profile payload.
func submitAssessment(t *testing.T, ts *testServer, token string, answers []string) map[string]any {
	t.Helper()

	status, body := ts.apiRequest(t, http.MethodPost, "/api/v1/assessment", map[string]any{"answers": answers}, token)
	require.Equal(t, http.StatusOK, status, "submit assessment: %v", body)
	return body
}

// errorCode digs the machine-readable code out of an error response body.
func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()

	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error object in body: %v", body)
	code, ok := errObj["code"].(string)
	require.True(t, ok, "expected code string in error: %v", errObj)
	return code
}
