package sync

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/matthewdavidson09/dynamic-device-groups/internal/active_directory"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/entra"
)

type fakeDirectory struct {
	existing  map[string]bool
	lookupErr map[string]error
	createErr map[string]error
	created   []entra.GroupSpec
}

func newFakeDirectory(existing ...string) *fakeDirectory {
	f := &fakeDirectory{
		existing:  make(map[string]bool),
		lookupErr: make(map[string]error),
		createErr: make(map[string]error),
	}
	for _, name := range existing {
		f.existing[name] = true
	}
	return f
}

func (f *fakeDirectory) GroupExists(ctx context.Context, displayName string) (bool, error) {
	if err, ok := f.lookupErr[displayName]; ok {
		return false, err
	}
	return f.existing[displayName], nil
}

func (f *fakeDirectory) CreateGroup(ctx context.Context, spec entra.GroupSpec) (string, error) {
	if err, ok := f.createErr[spec.DisplayName]; ok {
		return "", err
	}
	f.created = append(f.created, spec)
	f.existing[spec.DisplayName] = true
	return "id-" + spec.MailNickname, nil
}

func testOptions() Options {
	return Options{Prefix: "Devices - ", DeviceAttribute: "extensionAttribute1"}
}

func testUnits(names ...string) []active_directory.OrgUnit {
	var units []active_directory.OrgUnit
	for _, name := range names {
		units = append(units, active_directory.OrgUnit{
			Name: name,
			DN:   "OU=" + strings.TrimSpace(name) + ",DC=corp,DC=example,DC=com",
		})
	}
	return units
}

func TestSyncCreatesMissingGroups(t *testing.T) {
	dir := newFakeDirectory()
	log, _ := test.NewNullLogger()

	result := SyncOrgUnits(context.Background(), dir, testUnits("Sales", "HR "), testOptions(), log)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	var names []string
	for _, spec := range dir.created {
		names = append(names, spec.DisplayName)
	}
	assert.Equal(t, []string{"Devices - HR", "Devices - Sales"}, names)
}

func TestSyncSkipsExistingGroups(t *testing.T) {
	dir := newFakeDirectory("Devices - Sales")
	log, hook := test.NewNullLogger()

	result := SyncOrgUnits(context.Background(), dir, testUnits("Sales", "HR"), testOptions(), log)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, dir.created, 1)
	assert.Equal(t, "Devices - HR", dir.created[0].DisplayName)

	var skipLogged bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Group already exists, skipping" {
			skipLogged = true
		}
	}
	assert.True(t, skipLogged)
}

func TestSyncSecondRunCreatesNothing(t *testing.T) {
	dir := newFakeDirectory()
	log, _ := test.NewNullLogger()
	units := testUnits("Sales", "HR", "Engineering")

	first := SyncOrgUnits(context.Background(), dir, units, testOptions(), log)
	assert.Equal(t, 3, first.Created)

	second := SyncOrgUnits(context.Background(), dir, units, testOptions(), log)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Skipped)
	assert.Len(t, dir.created, 3)
}

func TestSyncContinuesAfterCreateFailure(t *testing.T) {
	dir := newFakeDirectory()
	dir.createErr["Devices - HR"] = errors.New("transport error")
	log, hook := test.NewNullLogger()

	result := SyncOrgUnits(context.Background(), dir, testUnits("Sales", "HR"), testOptions(), log)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, dir.created, 1)
	assert.Equal(t, "Devices - Sales", dir.created[0].DisplayName)

	var errorLogged bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			errorLogged = true
		}
	}
	assert.True(t, errorLogged)
}

func TestSyncExistenceCheckFailureSkipsUnit(t *testing.T) {
	dir := newFakeDirectory()
	dir.lookupErr["Devices - Sales"] = errors.New("auth error")
	log, hook := test.NewNullLogger()

	result := SyncOrgUnits(context.Background(), dir, testUnits("Sales", "HR"), testOptions(), log)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, dir.created, 1)
	assert.Equal(t, "Devices - HR", dir.created[0].DisplayName)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestSyncDryRunCreatesNothing(t *testing.T) {
	dir := newFakeDirectory()
	log, _ := test.NewNullLogger()
	opts := testOptions()
	opts.DryRun = true

	result := SyncOrgUnits(context.Background(), dir, testUnits("Sales", "HR"), opts, log)

	assert.Equal(t, 2, result.Created)
	assert.Empty(t, dir.created)
}

func TestSyncDedupesDuplicateOUNames(t *testing.T) {
	units := []active_directory.OrgUnit{
		{Name: "Sales", DN: "OU=Sales,DC=corp,DC=example,DC=com"},
		{Name: "Sales", DN: "OU=Sales,OU=EMEA,DC=corp,DC=example,DC=com"},
	}
	dir := newFakeDirectory()
	log, hook := test.NewNullLogger()

	result := SyncOrgUnits(context.Background(), dir, units, testOptions(), log)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Created)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Duplicate OU name, keeping first occurrence only" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestSyncWarnsOnMailNicknameCollision(t *testing.T) {
	dir := newFakeDirectory()
	log, hook := test.NewNullLogger()

	result := SyncOrgUnits(context.Background(), dir, testUnits("Sales US", "Sales-US"), testOptions(), log)

	// Distinct display names, so both are attempted.
	assert.Equal(t, 2, result.Created)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Mail nickname collision, provider may reject creation" {
			warned = true
		}
	}
	assert.True(t, warned)
}
