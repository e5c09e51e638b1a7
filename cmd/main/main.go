package main

import (
	"context"
	"os"

	"octopart/api/internal/client"
	"octopart/api/internal/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	query := "resistor"
	if len(os.Args) > 1 {
		query = os.Args[1]
	}

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := client.NewOctopartClient(cfg.Octopart)
	ctx := context.Background()

	log.Infof("Searching parts for %q...", query)
	result, err := api.PartsSearch(ctx, query, client.Args{"limit": 10})
	if err != nil {
		log.Fatalf("Part search failed: %v", err)
	}

	for _, hit := range result.Hits {
		log.Infof("Part %d: %s %s", hit.Part.UID, hit.Part.Manufacturer.Displayname, hit.Part.MPN)
	}
	log.Infof("Found %d parts", len(result.Hits))
}
