package active_directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDN(t *testing.T) {
	assert.Equal(t,
		"ou=sales,dc=corp,dc=example,dc=com",
		NormalizeDN("  OU=Sales,DC=corp,DC=example,DC=com "))
}

func TestSortOrgUnitsIgnoresCase(t *testing.T) {
	units := []OrgUnit{
		{Name: "sales"},
		{Name: "Engineering"},
		{Name: "HR"},
	}

	SortOrgUnits(units)

	assert.Equal(t, "Engineering", units[0].Name)
	assert.Equal(t, "HR", units[1].Name)
	assert.Equal(t, "sales", units[2].Name)
}

func TestDedupeOrgUnitsFirstDNWins(t *testing.T) {
	units := []OrgUnit{
		{Name: "Sales", DN: "OU=Sales,DC=corp,DC=example,DC=com"},
		{Name: "Sales ", DN: "OU=Sales,OU=EMEA,DC=corp,DC=example,DC=com"},
		{Name: "HR", DN: "OU=HR,DC=corp,DC=example,DC=com"},
	}

	kept, dropped := DedupeOrgUnits(units)

	assert.Len(t, kept, 2)
	assert.Equal(t, "OU=Sales,DC=corp,DC=example,DC=com", kept[0].DN)
	assert.Len(t, dropped, 1)
	assert.Equal(t, "OU=Sales,OU=EMEA,DC=corp,DC=example,DC=com", dropped[0].DN)
}
