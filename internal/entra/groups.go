package entra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	abstractions "github.com/microsoft/kiota-abstractions-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/groups"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"

	"github.com/matthewdavidson09/dynamic-device-groups/tools"
)

var (
	ErrGroupLookup = errors.New("group lookup failed")
	ErrGroupCreate = errors.New("group creation failed")
)

// GroupSpec describes the dynamic device group to be created for one OU.
type GroupSpec struct {
	DisplayName    string
	Description    string
	MailNickname   string
	MembershipRule string
}

// EntraGroup is the slim view of an existing group we care about.
type EntraGroup struct {
	ID             string
	DisplayName    string
	MembershipRule string
}

// GetGroupByDisplayName looks up a group by exact display name. Returns nil
// when no group matches.
func GetGroupByDisplayName(ctx context.Context, client *msgraphsdk.GraphServiceClient, displayName string) (*EntraGroup, error) {
	// OData string literals escape single quotes by doubling them.
	sanitized := strings.ReplaceAll(displayName, "'", "''")
	filter := fmt.Sprintf("displayName eq '%s'", sanitized)
	top := int32(1)

	headers := abstractions.NewRequestHeaders()
	headers.Add("ConsistencyLevel", "eventual")

	requestConfig := &groups.GroupsRequestBuilderGetRequestConfiguration{
		Headers: headers,
		QueryParameters: &groups.GroupsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Top:    &top,
			Select: []string{"id", "displayName", "membershipRule"},
		},
	}

	result, err := client.Groups().Get(ctx, requestConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrGroupLookup, displayName, graphErrorMessage(err))
	}

	entries := result.GetValue()
	if len(entries) == 0 {
		return nil, nil
	}

	entry := entries[0]
	group := &EntraGroup{}
	if id := entry.GetId(); id != nil {
		group.ID = *id
	}
	if name := entry.GetDisplayName(); name != nil {
		group.DisplayName = *name
	}
	if rule := entry.GetMembershipRule(); rule != nil {
		group.MembershipRule = *rule
	}
	return group, nil
}

// CreateDynamicGroup creates a security group whose device membership is
// computed by Entra from the spec's membership rule. Returns the new group id.
func CreateDynamicGroup(ctx context.Context, client *msgraphsdk.GraphServiceClient, spec GroupSpec) (string, error) {
	mailEnabled := false
	securityEnabled := true
	processingState := "On"

	group := models.NewGroup()
	group.SetDisplayName(&spec.DisplayName)
	group.SetDescription(&spec.Description)
	group.SetMailEnabled(&mailEnabled)
	group.SetMailNickname(&spec.MailNickname)
	group.SetSecurityEnabled(&securityEnabled)
	group.SetGroupTypes([]string{"DynamicMembership"})
	group.SetMembershipRule(&spec.MembershipRule)
	group.SetMembershipRuleProcessingState(&processingState)

	created, err := client.Groups().Post(ctx, group, nil)
	if err != nil {
		tools.Log.WithFields(map[string]interface{}{
			"group": spec.DisplayName,
			"error": err,
		}).Error("Failed to create group")
		return "", fmt.Errorf("%w: %s: %s", ErrGroupCreate, spec.DisplayName, graphErrorMessage(err))
	}
	if created == nil || created.GetId() == nil {
		return "", fmt.Errorf("%w: %s: no id returned", ErrGroupCreate, spec.DisplayName)
	}

	tools.Log.WithField("group", spec.DisplayName).Info("Group created successfully")
	return *created.GetId(), nil
}

// graphErrorMessage digs the human-readable message out of Graph OData
// errors, which otherwise stringify as "error status code received".
func graphErrorMessage(err error) string {
	var oErr *odataerrors.ODataError
	if errors.As(err, &oErr) {
		if mainErr := oErr.GetErrorEscaped(); mainErr != nil && mainErr.GetMessage() != nil {
			return *mainErr.GetMessage()
		}
	}
	return err.Error()
}
