package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	adaptershttp "github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/handler"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/repository/postgres"
	redisrepo "github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/repository/redis"
	infraredis "github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/redis"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/tests/testutil"
	goredis "github.com/redis/go-redis/v9"
)

type testEnv struct {
	db     *testutil.TestDB
	redis  *goredis.Client
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	debtRepo := testDB.Debts
	txManager := postgres.NewTxManager(testDB.Pool)
	idGen := postgres.NewULIDGenerator()

	rulesStore := redisrepo.NewRulesStore(redisClient)
	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	debtUC := usecase.NewDebtUseCase(debtRepo, idGen)
	paymentUC := usecase.NewPaymentUseCase(txManager, debtRepo, idGen, nil, cache)
	rulesUC := usecase.NewRulesUseCase(rulesStore)
	scoreUC := usecase.NewScoreUseCase(debtRepo, rulesUC, cache)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		DebtHandler:      handler.NewDebtHandler(debtUC),
		PaymentHandler:   handler.NewPaymentHandler(paymentUC, nil),
		ScoreHandler:     handler.NewScoreHandler(scoreUC, nil),
		RulesHandler:     handler.NewRulesHandler(rulesUC, nil),
		HealthHandler:    handler.NewHealthHandler(testDB.Pool, redisClient),
		IdempotencyStore: idempotencyStore,
	})

	return &testEnv{
		db:     testDB,
		redis:  redisClient,
		router: router,
	}
}

// reset clears the debt table and the settings store so tests do not leak
// into each other.
func (env *testEnv) reset(ctx context.Context) {
	env.db.TruncateAll(ctx)
	env.redis.FlushDB(ctx)
}

func (env *testEnv) do(t *testing.T, method, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, body)
	r.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, r)

	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}

	return out
}
