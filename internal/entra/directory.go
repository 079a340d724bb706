package entra

import (
	"context"

	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
)

// Directory adapts the Graph client to the sync loop's target interface.
type Directory struct {
	Client *msgraphsdk.GraphServiceClient
}

func (d *Directory) GroupExists(ctx context.Context, displayName string) (bool, error) {
	group, err := GetGroupByDisplayName(ctx, d.Client, displayName)
	if err != nil {
		return false, err
	}
	return group != nil, nil
}

func (d *Directory) CreateGroup(ctx context.Context, spec GroupSpec) (string, error) {
	return CreateDynamicGroup(ctx, d.Client, spec)
}
