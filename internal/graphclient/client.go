package graphclient

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"

	"github.com/matthewdavidson09/dynamic-device-groups/internal/config"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/secrets"
	"github.com/matthewdavidson09/dynamic-device-groups/tools"
)

// NewGraphClient builds a Graph service client authenticated as the tenant's
// application identity. The secret is resolved through the provider and
// handed straight to the credential, never stored on the config.
func NewGraphClient(ctx context.Context, cfg *config.Config, provider secrets.Provider) (*msgraphsdk.GraphServiceClient, error) {
	secret, err := provider.ClientSecret(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client secret: %w", err)
	}

	cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, secret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build client secret credential: %w", err)
	}

	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{"https://graph.microsoft.com/.default"})
	if err != nil {
		return nil, fmt.Errorf("failed to create graph client: %w", err)
	}

	tools.Log.WithField("tenant", cfg.TenantID).Debug("Graph client ready")
	return client, nil
}
