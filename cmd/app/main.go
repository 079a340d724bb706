package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/active_directory"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/config"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/entra"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/graphclient"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/ldapclient"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/secrets"
	"github.com/matthewdavidson09/dynamic-device-groups/internal/sync"
	"github.com/matthewdavidson09/dynamic-device-groups/tools"
)

func main() {
	// Load environment and init logger; a missing .env is fine in CI/prod.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		tools.Log.Fatalf("Failed to load .env file: %v", err)
	}
	tools.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		tools.Log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	runLog := tools.Log.WithField("run", uuid.NewString())

	// Connect to LDAP
	client, err := ldapclient.Connect(cfg)
	if err != nil {
		tools.Log.Fatalf("Failed to connect to LDAP: %v", err)
	}
	defer client.Close()

	// Build the Graph client for the Entra tenant
	graph, err := graphclient.NewGraphClient(ctx, cfg, secrets.NewEnvProvider())
	if err != nil {
		tools.Log.Fatalf("Failed to create Graph client: %v", err)
	}

	// Load all organizational units once
	units, err := active_directory.GetOrganizationalUnits(client)
	if err != nil {
		tools.Log.Fatalf("Failed to fetch organizational units: %v", err)
	}
	runLog.Infof("Found %d organizational units", len(units))

	start := time.Now()
	result := sync.SyncOrgUnits(ctx, &entra.Directory{Client: graph}, units, sync.Options{
		Prefix:          cfg.GroupPrefix,
		DeviceAttribute: cfg.DeviceAttribute,
		DryRun:          cfg.DryRun,
	}, runLog)

	tools.LogRunSummary(result.Total, result.Created, result.Skipped, result.Failed)
	runLog.Infof("Finished syncing device groups in %s", time.Since(start))

	if result.Failed > 0 {
		os.Exit(1)
	}
}
