package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/BruksfildServices01/cleaning-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/cleaning-booking/internal/db"
	"github.com/BruksfildServices01/cleaning-booking/internal/logging"
)

func main() {
	demo := flag.Bool("demo", false, "also insert a starter price list when the catalog is empty")
	flag.Parse()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	// NewDB migrates before returning
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}

	if err := dbpkg.SeedReferenceData(db); err != nil {
		log.Error("seed reference data", "error", err)
		os.Exit(1)
	}
	log.Info("reference data seeded")

	if *demo {
		if err := dbpkg.SeedDemoCatalog(db); err != nil {
			log.Error("seed demo catalog", "error", err)
			os.Exit(1)
		}
		log.Info("demo catalog seeded")
	}
}
