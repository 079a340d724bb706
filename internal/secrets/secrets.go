package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Provider hands out the application client secret so that the rest of the
// pipeline never holds or logs raw credential material. Implementations can
// be backed by the environment, a vault, or a managed secret store.
type Provider interface {
	ClientSecret(ctx context.Context) (string, error)
}

// EnvProvider reads the client secret from an environment variable.
type EnvProvider struct {
	Key string
}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{Key: "ENTRA_CLIENT_SECRET"}
}

func (p *EnvProvider) ClientSecret(ctx context.Context) (string, error) {
	secret := strings.TrimSpace(os.Getenv(p.Key))
	if secret == "" {
		return "", fmt.Errorf("client secret not set in %s", p.Key)
	}
	return secret, nil
}
