package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/logger"
	"github.com/MKhiriev/go-conf-keeper/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("confkeeper")
	cfg, err := config.GetFileConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	s, err := store.New(ctx, store.Options{
		BaseDir:        cfg.BaseDir,
		IgnoreDefaults: cfg.IgnoreDefaults,
		DenyRootAccess: cfg.DenyRootAccess,
		Timeout:        cfg.Timeout,
		Logger:         log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating configuration store")
	}

	for _, ref := range cfg.Files {
		if err := s.Load(ctx, ref); err != nil {
			log.Fatal().Err(err).Str("ref", ref).Msg("error loading configuration source")
		}
	}

	// remaining args are keys to resolve; no args dumps the whole tree
	keys := flag.Args()
	if len(keys) == 0 {
		fmt.Print(s.String())
		return
	}

	for _, key := range keys {
		val, err := s.Get(key)
		if err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("error resolving key")
		}

		fmt.Printf("%s = %v\n", key, val)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
