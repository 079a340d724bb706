package sync

import (
	"fmt"
	"strings"

	"github.com/matthewdavidson09/dynamic-device-groups/internal/active_directory"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/entra"
	"github.com/matthewdavidson09/dynamic-device-groups/tools"
)

// PlanGroup derives the target group for one organizational unit. Pure:
// the same unit, prefix, and attribute always yield the same spec.
func PlanGroup(unit active_directory.OrgUnit, prefix, deviceAttribute string) entra.GroupSpec {
	name := strings.TrimSpace(unit.Name)
	displayName := prefix + name

	return entra.GroupSpec{
		DisplayName:    displayName,
		Description:    fmt.Sprintf("Dynamic device group for OU %s", name),
		MailNickname:   tools.Slugify(displayName),
		MembershipRule: fmt.Sprintf(`(device.%s -eq "%s")`, deviceAttribute, name),
	}
}
