package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"currency-wallet/config"
	"currency-wallet/internal/adapter/exchange"
	httpHandler "currency-wallet/internal/adapter/http/handler"
	redisStorage "currency-wallet/internal/adapter/storage/redis"
	"currency-wallet/internal/core/domain"
	"currency-wallet/internal/core/ports"
	"currency-wallet/internal/service"
	"currency-wallet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testApp wires the real HTTP layer, services and Redis stores against
// miniredis and a stubbed exchange rate endpoint, exercising the whole
// stack end-to-end without external processes.

const (
	testUsername = "pjauvin"
	testPassword = "supermariobros"
	testUserID   = "user-pjauvin"
)

type testApp struct {
	server      *httptest.Server
	rateServer  *httptest.Server
	redis       *miniredis.Miniredis
	client      *goredis.Client
	walletStore *redisStorage.WalletStore
}

// newTestApp starts the full stack. Rates are fixed: 1 JPY = 0.03 PLN,
// 1 USD = 4.05 PLN, 1 EUR = 4.30 PLN.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	log := logger.New("debug", false)

	rates := map[string]float64{"jpy": 0.03, "usd": 4.05, "eur": 4.30}
	rateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		code := parts[len(parts)-1]
		ask, ok := rates[code]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"rates":[{"ask":%v}]}`, ask)
	}))
	t.Cleanup(rateServer.Close)

	walletStore := redisStorage.NewWalletStore(rdb, "wallet:", log)
	userStore := redisStorage.NewUserStore(rdb, "user:")

	hashSvc := service.NewBcryptHashService()
	tokenSvc := service.NewJWTTokenService("test-signing-key", 30*time.Minute, "currency-wallet")
	authSvc := service.NewAuthService(userStore, hashSvc)

	nbpClient := exchange.NewNBPClient(config.RatesConfig{
		BaseURL:            rateServer.URL,
		ConversionEndpoint: "exchangerates/rates/c/%s?format=json",
		CacheTTL:           time.Minute,
		CacheSize:          10,
	}, rateServer.Client(), log)
	registry := exchange.NewRegistry(nbpClient)

	walletSvc := service.NewWalletService(walletStore, registry, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		WalletSvc:      walletSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	app := &testApp{
		server:      server,
		rateServer:  rateServer,
		redis:       mr,
		client:      rdb,
		walletStore: walletStore,
	}
	app.seed(t, hashSvc, userStore)
	return app
}

// seed provisions the reference user with JPY 500 and USD 10.
func (a *testApp) seed(t *testing.T, hashSvc ports.HashService, userStore ports.UserStore) {
	t.Helper()
	ctx := context.Background()

	hash, err := hashSvc.Hash(testPassword)
	require.NoError(t, err)
	require.NoError(t, userStore.CreateUser(ctx, &domain.User{
		UserID:       testUserID,
		Username:     testUsername,
		PasswordHash: hash,
	}))

	require.NoError(t, a.walletStore.CreateWallet(ctx, &domain.Wallet{
		UserID: testUserID,
		Balances: map[domain.Currency]decimal.Decimal{
			domain.CurrencyJPY: decimal.NewFromInt(500),
			domain.CurrencyUSD: decimal.NewFromInt(10),
		},
		LocalCurrency: domain.LocalCurrencyPLN,
	}))
}

// login posts the credential form and returns the bearer token.
func (a *testApp) login(t *testing.T, username, password string) (string, *http.Response) {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	resp, err := http.PostForm(a.server.URL+"/token", form)
	require.NoError(t, err)

	if resp.StatusCode != http.StatusOK {
		return "", resp
	}
	defer resp.Body.Close()

	var env struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Equal(t, "bearer", env.Data.TokenType)
	require.NotEmpty(t, env.Data.AccessToken)
	return env.Data.AccessToken, resp
}

func (a *testApp) do(t *testing.T, method, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, a.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

type walletBody struct {
	Balances map[string]decimal.Decimal `json:"balances"`
	Total    decimal.Decimal            `json:"total"`
}

func decodeWallet(t *testing.T, resp *http.Response) walletBody {
	t.Helper()
	defer resp.Body.Close()

	var env struct {
		Data walletBody `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Data
}

func decodeErrorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	var env struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.ErrorCode
}
