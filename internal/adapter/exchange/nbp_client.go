package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"currency-wallet/config"
	"currency-wallet/internal/core/domain"
	"currency-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// NBPClient implements ports.RateProvider against the NBP (Narodowy Bank
// Polski) exchange rate API. Rates convert one unit of a holding currency
// into PLN. Successful lookups are cached for the configured TTL.
type NBPClient struct {
	httpClient *http.Client
	baseURL    string
	// endpoint is a template with a %s slot for the lowercased
	// currency code, e.g. "exchangerates/rates/c/%s?format=json".
	endpoint string
	cache    *rateCache
	log      zerolog.Logger
}

// nbpResponse mirrors the NBP "c" table payload; the ask price is the
// conversion rate.
type nbpResponse struct {
	Rates []struct {
		Ask float64 `json:"ask"`
	} `json:"rates"`
}

// NewNBPClient creates an NBP rate provider.
func NewNBPClient(cfg config.RatesConfig, httpClient *http.Client, log zerolog.Logger) *NBPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &NBPClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		endpoint:   cfg.ConversionEndpoint,
		cache:      newRateCache(cfg.CacheTTL, cfg.CacheSize),
		log:        log,
	}
}

// GetRate returns the PLN rate for the given holding currency.
func (c *NBPClient) GetRate(ctx context.Context, code domain.Currency) (float64, error) {
	if _, err := domain.ParseCurrency(string(code)); err != nil {
		return 0, err
	}

	if rate, ok := c.cache.get(code); ok {
		return rate, nil
	}

	url := c.baseURL + "/" + fmt.Sprintf(c.endpoint, strings.ToLower(string(code)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("building rate request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("fetching rate for %s: %w", code, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("rate source returned %d for %s", resp.StatusCode, code))
	}

	var payload nbpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("decoding rate response for %s: %w", code, err))
	}
	if len(payload.Rates) == 0 {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("rate response for %s carries no rates", code))
	}

	rate := payload.Rates[0].Ask
	c.cache.put(code, rate)

	c.log.Debug().
		Str("currency", string(code)).
		Float64("rate", rate).
		Msg("exchange rate fetched")

	return rate, nil
}

// LocalCurrency returns the fixed conversion target of this provider.
func (c *NBPClient) LocalCurrency() domain.LocalCurrency {
	return domain.LocalCurrencyPLN
}

// Name identifies the provider for logging.
func (c *NBPClient) Name() string {
	return "nbp"
}
