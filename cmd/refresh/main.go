package main

import (
	"log"

	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/internal/config"
	"github.com/granttrack/granttrack/internal/config/db"
	"github.com/granttrack/granttrack/internal/repository"
)

// Rebuilds every payment cluster from scratch. Run after restoring a dump
// or any manual edit that bypassed the API.
func main() {
	config.LoadConfig()
	db.Init()

	repos := repository.NewRepositories(db.DB)
	clusters := application.NewClusterService(repos, nil)

	if err := clusters.RefreshAll(); err != nil {
		log.Fatalf("cluster refresh failed: %v", err)
	}

	n, err := repos.Cluster.ListClusters()
	if err != nil {
		log.Fatalf("listing clusters: %v", err)
	}
	log.Printf("cluster refresh complete, %d clusters", len(n))
}
