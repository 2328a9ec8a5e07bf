package exchange

import (
	"currency-wallet/internal/core/domain"
	"currency-wallet/internal/core/ports"
	"currency-wallet/pkg/apperror"
)

// Registry implements ports.RateRegistry over a static mapping built at
// startup. Adding a local currency means registering a provider here;
// wallet aggregation never changes.
type Registry struct {
	providers map[domain.LocalCurrency]ports.RateProvider
}

// NewRegistry builds a registry keyed by each provider's local currency.
func NewRegistry(providers ...ports.RateProvider) *Registry {
	m := make(map[domain.LocalCurrency]ports.RateProvider, len(providers))
	for _, p := range providers {
		m[p.LocalCurrency()] = p
	}
	return &Registry{providers: m}
}

// Provider returns the provider converting into the given local currency.
func (r *Registry) Provider(local domain.LocalCurrency) (ports.RateProvider, error) {
	p, ok := r.providers[local]
	if !ok {
		return nil, apperror.ErrUnsupportedLocalCurrency(string(local))
	}
	return p, nil
}
