package sync

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/matthewdavidson09/dynamic-device-groups/internal/active_directory"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/entra"
)

// GroupDirectory is the target side of the sync: look up a group by exact
// display name, create one that is missing. Implemented by entra.Directory
// and by test doubles.
type GroupDirectory interface {
	GroupExists(ctx context.Context, displayName string) (bool, error)
	CreateGroup(ctx context.Context, spec entra.GroupSpec) (string, error)
}

type Options struct {
	Prefix          string
	DeviceAttribute string
	DryRun          bool
}

// RunResult counts per-unit outcomes. Failed covers both existence-check
// and creation errors; skips of already-present groups are success.
type RunResult struct {
	Total   int
	Created int
	Skipped int
	Failed  int
}

// SyncOrgUnits processes every unit sequentially: plan, check, create or
// skip. Per-unit errors are logged and isolated; they never abort the run.
func SyncOrgUnits(ctx context.Context, dir GroupDirectory, units []active_directory.OrgUnit, opts Options, log logrus.FieldLogger) RunResult {
	active_directory.SortOrgUnits(units)

	units, dropped := active_directory.DedupeOrgUnits(units)
	for _, dup := range dropped {
		log.WithFields(logrus.Fields{
			"ou": dup.Name,
			"dn": dup.DN,
		}).Warn("Duplicate OU name, keeping first occurrence only")
	}

	result := RunResult{Total: len(units)}
	nicknames := make(map[string]string, len(units))

	for _, unit := range units {
		spec := PlanGroup(unit, opts.Prefix, opts.DeviceAttribute)

		if prior, ok := nicknames[spec.MailNickname]; ok {
			log.WithFields(logrus.Fields{
				"group":    spec.DisplayName,
				"nickname": spec.MailNickname,
				"clashes":  prior,
			}).Warn("Mail nickname collision, provider may reject creation")
		}
		nicknames[spec.MailNickname] = spec.DisplayName

		log.WithFields(logrus.Fields{
			"ou":    unit.Name,
			"group": spec.DisplayName,
			"rule":  spec.MembershipRule,
		}).Debug("Planned group")

		exists, err := dir.GroupExists(ctx, spec.DisplayName)
		if err != nil {
			log.WithError(err).Warnf("Existence check failed for %s, skipping unit", spec.DisplayName)
			result.Failed++
			continue
		}

		if exists {
			log.WithField("group", spec.DisplayName).Info("Group already exists, skipping")
			result.Skipped++
			continue
		}

		if opts.DryRun {
			log.Infof("[DRY] Would create group %s", spec.DisplayName)
			result.Created++
			continue
		}

		id, err := dir.CreateGroup(ctx, spec)
		if err != nil {
			log.WithError(err).Errorf("Failed to create group %s", spec.DisplayName)
			result.Failed++
			continue
		}

		log.WithFields(logrus.Fields{
			"group": spec.DisplayName,
			"id":    id,
		}).Info("Created dynamic device group")
		result.Created++
	}

	return result
}
