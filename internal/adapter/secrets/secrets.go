// Package secrets provides the secret-retrieval collaborator. Deployed
// environments read secrets injected by the platform; LOCAL runs use a
// static provider so no external secret manager is needed.
package secrets

import (
	"context"
	"fmt"
	"os"

	"currency-wallet/config"
	"currency-wallet/internal/core/ports"
)

// localJWTSecret backs the static provider. Test/dev only.
const localJWTSecret = "DUMMYSECRETKEYFORTESTING"

// EnvProvider resolves secrets from environment variables.
type EnvProvider struct{}

// NewEnvProvider creates an environment-backed secret provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// GetSecret returns the value of the environment variable named name.
func (p *EnvProvider) GetSecret(_ context.Context, name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("secret %q not set", name)
	}
	return value, nil
}

// StaticProvider serves a fixed set of secrets.
type StaticProvider struct {
	values map[string]string
}

// NewStaticProvider creates a provider over a fixed secret map.
func NewStaticProvider(values map[string]string) *StaticProvider {
	return &StaticProvider{values: values}
}

// GetSecret returns the configured value for name.
func (p *StaticProvider) GetSecret(_ context.Context, name string) (string, error) {
	value, ok := p.values[name]
	if !ok {
		return "", fmt.Errorf("secret %q not configured", name)
	}
	return value, nil
}

// NewFromConfig picks the provider matching the deployment environment.
func NewFromConfig(cfg *config.Config) ports.SecretProvider {
	if cfg.IsLocal() {
		return NewStaticProvider(map[string]string{
			cfg.JWT.SecretName: localJWTSecret,
		})
	}
	return NewEnvProvider()
}
