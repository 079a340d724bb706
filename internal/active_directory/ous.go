package active_directory

import (
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/ldapclient"
	"github.com/matthewdavidson09/dynamic-device-groups/tools"
)

var ErrSourceUnavailable = errors.New("organizational units unavailable")

// OrgUnit represents a single organizational unit read from the directory.
type OrgUnit struct {
	Name        string
	DN          string
	Description string
	GUID        string
}

// GetOrganizationalUnits returns every OU under the client's base DN in a
// single subtree search. There is no pagination: the full set comes back in
// one call or the run aborts.
func GetOrganizationalUnits(client *ldapclient.LDAPClient) ([]OrgUnit, error) {
	filter := "(objectClass=organizationalUnit)"
	attributes := []string{"ou", "name", "distinguishedName", "description", "objectGUID"}

	searchReq := ldap.NewSearchRequest(
		client.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		filter,
		attributes,
		nil,
	)

	result, err := client.Conn.Search(searchReq)
	if err != nil {
		return nil, fmt.Errorf("%w: search under %s: %v", ErrSourceUnavailable, client.BaseDN, err)
	}

	var units []OrgUnit
	for _, entry := range result.Entries {
		name := entry.GetAttributeValue("ou")
		if name == "" {
			name = entry.GetAttributeValue("name")
		}
		if name == "" {
			tools.Log.WithField("dn", entry.DN).Warn("OU entry has no name attribute, skipping")
			continue
		}

		units = append(units, OrgUnit{
			Name:        name,
			DN:          entry.DN,
			Description: entry.GetAttributeValue("description"),
			GUID:        tools.FormatGUID(entry.GetRawAttributeValue("objectGUID")),
		})
	}

	return units, nil
}
