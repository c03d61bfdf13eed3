package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "equity-registry/internal/adapter/http/handler"
	redisStorage "equity-registry/internal/adapter/storage/redis"
	"equity-registry/internal/service"
	"equity-registry/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on in-memory storage: miniredis
// behind the Redis stores and map-backed postgres repos. This exercises the
// real HTTP layer, middleware, handlers and services end-to-end.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	return buildTestApp(t, false)
}

// newRateLimitedTestApp enables the Redis rate limiter, which the other
// scenarios keep off so that repeated registrations do not trip it.
func newRateLimitedTestApp(t *testing.T) *testApp {
	return buildTestApp(t, true)
}

func buildTestApp(t *testing.T, rateLimited bool) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	var rateLimitStore *redisStorage.RateLimitStore
	if rateLimited {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	accountRepo := newInMemoryAccountRepo()
	registryRepo := newInMemoryRegistryRepo()
	holderRepo := newInMemoryHolderRepo()
	allowanceRepo := newInMemoryAllowanceRepo()
	delegationRepo := newInMemoryDelegationRepo()
	eventRepo := newInMemoryEventRepo()
	transactor := newInMemoryTransactor()

	log := logger.New("error", false)

	// Empty webhook URL disables outbound notifications.
	notifier := service.NewWebhookNotifier("", "", sigSvc, http.DefaultClient, log)

	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(registryRepo, holderRepo, allowanceRepo, eventRepo, idempotencyCache, transactor, notifier, log)
	votingSvc := service.NewVotingService(registryRepo, holderRepo, delegationRepo, transactor, log)
	rightsSvc := service.NewRightsService(votingSvc)
	registrySvc := service.NewRegistryService(registryRepo, holderRepo, eventRepo, transactor, notifier, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		VotingSvc:      votingSvc,
		RightsSvc:      rightsSvc,
		RegistrySvc:    registrySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server: server,
		redis:  mr,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Request Helpers ---

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "response has no data envelope: %v", envelope)
	return data
}

func (a *testApp) register(t *testing.T, address string) {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"address":  address,
		"password": "StrongPass123!",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func (a *testApp) login(t *testing.T, address string) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"address":  address,
		"password": "StrongPass123!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "john")
	token := app.login(t, "john")
	assert.NotEmpty(t, token)

	// Duplicate address
	resp := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"address":  "john",
		"password": "AnotherPass456!",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Wrong password
	resp = app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"address":  "john",
		"password": "wrong-password",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_UnauthenticatedRequestRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp := app.do(t, http.MethodGet, "/api/v1/registry", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_RegistryLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "john")
	app.register(t, "jane")
	app.register(t, "bob")
	john := app.login(t, "john")
	jane := app.login(t, "jane")
	bob := app.login(t, "bob")

	// Info before init
	resp := app.do(t, http.MethodGet, "/api/v1/registry", john, nil)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "REG_008")

	// John initializes the registry and becomes emitter with the full supply.
	resp = app.do(t, http.MethodPost, "/api/v1/registry", john, map[string]interface{}{
		"supply":   13000000,
		"name":     "Acme Registry",
		"symbol":   "ACME",
		"decimals": 0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "WEIGHT_PROPORTIONAL", data["vote_mode"])
	assert.Equal(t, float64(13000000), data["total_supply"])

	// Re-init fails
	resp = app.do(t, http.MethodPost, "/api/v1/registry", john, map[string]interface{}{
		"supply": 1000, "name": "Again", "symbol": "AGN", "decimals": 0,
	})
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "REG_007")

	resp = app.do(t, http.MethodGet, "/api/v1/me/balance", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	myBalance := decodeData(t, resp)
	assert.Equal(t, float64(13000000), myBalance["balance"])
	assert.Equal(t, true, myBalance["shareholder"])

	// jane registered but holds nothing yet.
	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/balance", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeData(t, resp)["shareholder"])

	// Transfers
	resp = app.do(t, http.MethodPost, "/api/v1/transfers", john, map[string]interface{}{
		"to": "jane", "amount": 1200000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "TRANSFERRED", decodeData(t, resp)["kind"])

	resp = app.do(t, http.MethodPost, "/api/v1/transfers", john, map[string]interface{}{
		"to": "bob", "amount": 700000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/balance", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1200000), decodeData(t, resp)["balance"])

	// Overdraw
	resp = app.do(t, http.MethodPost, "/api/v1/transfers", jane, map[string]interface{}{
		"to": "bob", "amount": 99999999,
	})
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "LED_001")

	// Voting profile under WEIGHT_PROPORTIONAL
	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/voting", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decodeData(t, resp)
	assert.Equal(t, float64(1200000), profile["organic_shares"])
	assert.Equal(t, float64(13000000), profile["total_votes"])
	assert.Equal(t, false, profile["majority"])
	weight := profile["organic_weight"].(map[string]interface{})
	assert.Equal(t, "1200000/13000000", weight["display"])
	assert.InDelta(t, 0.0923, weight["value"].(float64), 0.0001)

	resp = app.do(t, http.MethodGet, "/api/v1/me/voting", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeData(t, resp)["majority"])

	// Non-shareholder profile
	resp = app.do(t, http.MethodGet, "/api/v1/holders/ghost/voting", john, nil)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "REG_002")

	// Rights: jane holds ~9.23%, above 1/20 and below 1/10.
	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/rights", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rights := decodeData(t, resp)
	assert.Len(t, rights["organic_rights"], 4)

	resp = app.do(t, http.MethodGet, "/api/v1/rights/brackets", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	brackets := decodeData(t, resp)["brackets"].([]interface{})
	assert.Len(t, brackets, 4)

	// Delegation: bob delegates to jane.
	resp = app.do(t, http.MethodPut, "/api/v1/me/delegate", bob, map[string]string{"delegate": "jane"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodPut, "/api/v1/me/delegate", bob, map[string]string{"delegate": "bob"})
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "REG_006")

	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/voting", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decodeData(t, resp)
	assert.Equal(t, float64(700000), profile["delegated_shares"])
	assert.Equal(t, float64(1900000), profile["effective_shares"])
	assert.Equal(t, []interface{}{"bob"}, profile["delegators"])
	delegatedWeight := profile["delegated_weight"].(map[string]interface{})
	assert.Equal(t, "700000/13000000", delegatedWeight["display"])

	// Reverse lookup requires the target to be a shareholder.
	resp = app.do(t, http.MethodGet, "/api/v1/holders/ghost/delegators", john, nil)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "REG_002")

	resp = app.do(t, http.MethodGet, "/api/v1/me/voting", bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decodeData(t, resp)
	assert.Equal(t, true, profile["delegating"])
	assert.Equal(t, float64(0), profile["effective_votes"])

	// Rights unlocked by delegation: jane now commands ~14.6% effectively.
	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/rights", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rights = decodeData(t, resp)
	assert.Len(t, rights["organic_rights"], 4)
	assert.Len(t, rights["effective_rights"], 6)

	// Allowance: jane approves bob, bob moves jane's shares.
	resp = app.do(t, http.MethodPost, "/api/v1/allowances", jane, map[string]interface{}{
		"spender": "bob", "amount": 500000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodPost, "/api/v1/transfers/delegated", bob, map[string]interface{}{
		"from": "jane", "to": "bob", "amount": 200000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodGet, "/api/v1/allowances/bob", jane, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(300000), decodeData(t, resp)["amount"])

	resp = app.do(t, http.MethodGet, "/api/v1/me/balance", jane, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1000000), decodeData(t, resp)["balance"])

	// Supply administration is emitter-only.
	resp = app.do(t, http.MethodPost, "/api/v1/supply/mint", jane, map[string]interface{}{"amount": 1000})
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "REG_001")

	resp = app.do(t, http.MethodPost, "/api/v1/supply/mint", john, map[string]interface{}{"amount": 500000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(13500000), decodeData(t, resp)["total_supply"])

	resp = app.do(t, http.MethodPost, "/api/v1/supply/burn", john, map[string]interface{}{"amount": 500000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(13000000), decodeData(t, resp)["total_supply"])

	// Event journal
	resp = app.do(t, http.MethodGet, "/api/v1/registry/events", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeData(t, resp)["items"].([]interface{})
	kinds := make(map[string]bool)
	for _, item := range items {
		kinds[item.(map[string]interface{})["kind"].(string)] = true
	}
	assert.True(t, kinds["MINTED"])
	assert.True(t, kinds["BURNT"])
	assert.True(t, kinds["TRANSFERRED"])

	// Policy switch: one holder one vote.
	resp = app.do(t, http.MethodPut, "/api/v1/registry/vote-mode", john, map[string]string{
		"mode": "ONE_HOLDER_ONE_VOTE",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WEIGHT_PROPORTIONAL", decodeData(t, resp)["previous"])

	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/voting", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decodeData(t, resp)
	assert.Equal(t, float64(3), profile["total_votes"])
	assert.Equal(t, float64(1), profile["organic_votes"])
	assert.Equal(t, float64(1), profile["delegated_votes"])
	assert.Equal(t, float64(2), profile["effective_votes"])
	assert.Equal(t, true, profile["majority"]) // 2/3 > 1/2

	resp = app.do(t, http.MethodGet, "/api/v1/me/voting", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decodeData(t, resp)
	assert.Equal(t, false, profile["majority"]) // 1/3 under one-holder-one-vote

	// Unknown vote mode
	resp = app.do(t, http.MethodPut, "/api/v1/registry/vote-mode", john, map[string]string{"mode": "QUADRATIC"})
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "REG_009")

	// Dividend
	resp = app.do(t, http.MethodPut, "/api/v1/registry/dividend", john, map[string]interface{}{"rate": 0.05})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decodeData(t, resp)["previous"])
}

func TestIntegration_ExactHalfIsNotMajority(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "alice")
	app.register(t, "dave")
	alice := app.login(t, "alice")
	dave := app.login(t, "dave")

	resp := app.do(t, http.MethodPost, "/api/v1/registry", alice, map[string]interface{}{
		"supply": 1000, "name": "Half", "symbol": "HLF", "decimals": 0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodPost, "/api/v1/transfers", alice, map[string]interface{}{
		"to": "dave", "amount": 400,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodPut, "/api/v1/registry/vote-mode", alice, map[string]string{
		"mode": "ONE_HOLDER_ONE_VOTE",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Two holders, one vote each: exactly one half is not a majority.
	for _, token := range []string{alice, dave} {
		resp = app.do(t, http.MethodGet, "/api/v1/me/voting", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		profile := decodeData(t, resp)
		assert.Equal(t, float64(2), profile["total_votes"])
		assert.Equal(t, false, profile["majority"])
	}

	// Delegation tips the scale.
	resp = app.do(t, http.MethodPut, "/api/v1/me/delegate", dave, map[string]string{"delegate": "alice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodGet, "/api/v1/me/voting", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeData(t, resp)["majority"])
}

func TestIntegration_StockSplitWithDrift(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "john")
	app.register(t, "jane")
	app.register(t, "bob")
	john := app.login(t, "john")

	resp := app.do(t, http.MethodPost, "/api/v1/registry", john, map[string]interface{}{
		"supply": 601, "name": "Drift", "symbol": "DRF", "decimals": 0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for to, amount := range map[string]int{"jane": 200, "bob": 301} {
		resp = app.do(t, http.MethodPost, "/api/v1/transfers", john, map[string]interface{}{
			"to": to, "amount": amount,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Reverse split 1:3. 100/3=33, 200/3=66, 301/3=100: supply drops from
	// 601 to 199, so a BURNT event reconciles the 402 destroyed shares.
	resp = app.do(t, http.MethodPost, "/api/v1/registry/split", john, map[string]interface{}{
		"factor": 1.0 / 3.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	split := decodeData(t, resp)
	assert.Equal(t, float64(601), split["old_supply"])
	assert.Equal(t, float64(199), split["new_supply"])
	assert.Equal(t, float64(-402), split["drift"])

	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/balance", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(66), decodeData(t, resp)["balance"])

	resp = app.do(t, http.MethodGet, "/api/v1/registry/events", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeData(t, resp)["items"].([]interface{})
	var foundBurnt bool
	for _, item := range items {
		e := item.(map[string]interface{})
		if e["kind"] == "BURNT" && e["factor"] != nil {
			foundBurnt = true
			assert.Equal(t, float64(402), e["amount"])
			assert.Equal(t, float64(199), e["new_supply"])
		}
	}
	assert.True(t, foundBurnt, "drift reconciliation event missing")

	// Invalid factor
	resp = app.do(t, http.MethodPost, "/api/v1/registry/split", john, map[string]interface{}{"factor": 0})
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "REG_004")
}

func TestIntegration_IdempotentTransferReplay(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "john")
	app.register(t, "jane")
	john := app.login(t, "john")

	resp := app.do(t, http.MethodPost, "/api/v1/registry", john, map[string]interface{}{
		"supply": 10000, "name": "Idem", "symbol": "IDM", "decimals": 0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	transfer := map[string]interface{}{"to": "jane", "amount": 1500, "reference_id": "ORDER-001"}

	resp = app.do(t, http.MethodPost, "/api/v1/transfers", john, transfer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeData(t, resp)

	resp = app.do(t, http.MethodPost, "/api/v1/transfers", john, transfer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decodeData(t, resp)

	assert.Equal(t, first["id"], second["id"])

	resp = app.do(t, http.MethodGet, "/api/v1/holders/jane/balance", john, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1500), decodeData(t, resp)["balance"])
}

func TestIntegration_LoginRateLimit(t *testing.T) {
	app := newRateLimitedTestApp(t)
	defer app.close()

	payload := map[string]string{"address": "nobody", "password": "wrong-password"}

	var lastStatus int
	for i := 0; i < 11; i++ {
		resp := app.do(t, http.MethodPost, "/api/v1/auth/login", "", payload)
		lastStatus = resp.StatusCode
		resp.Body.Close()
		if i < 10 {
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode, fmt.Sprintf("attempt %d", i+1))
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, lastStatus)
}
