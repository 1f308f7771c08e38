package cmd

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Lumos-Labs-HQ/seedling/internal/config"
	"github.com/Lumos-Labs-HQ/seedling/internal/seeder"
	"github.com/Lumos-Labs-HQ/seedling/internal/store"
	"github.com/Lumos-Labs-HQ/seedling/internal/store/catalog"
)

// openStore connects to the configured database and registers the record
// type catalog, including any custom definitions from schema_dir.
func openStore() (*store.SQLStore, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(cfg.Database.Provider, dbURL)
	if err != nil {
		return nil, nil, err
	}

	metas := catalog.Builtin()
	if cfg.SchemaDir != "" {
		custom, err := catalog.LoadDir(cfg.SchemaDir)
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("failed to load custom record types: %w", err)
		}
		metas = append(metas, custom...)
	}
	if err := st.RegisterTypes(metas); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to register record types: %w", err)
	}

	return st, cfg, nil
}

func newSeeder(st store.Store, cfg *config.Config) *seeder.Seeder {
	return seeder.New(st, seeder.Options{
		Company:    cfg.Company,
		Currency:   cfg.Seed.Currency,
		MaxPerFlow: cfg.Seed.MaxPerFlow,
		Seed:       cfg.Seed.RandomSeed,
	})
}

// modulesOrDefault resolves the --modules flag against the configured
// module list, falling back to every known module.
func modulesOrDefault(flagged []string, cfg *config.Config) []string {
	if len(flagged) > 0 {
		return flagged
	}
	if len(cfg.Modules) > 0 {
		return cfg.Modules
	}
	return catalog.Modules
}
