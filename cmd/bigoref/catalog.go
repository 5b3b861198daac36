package main

import (
	"github.com/HerbHall/bigoref/internal/config"
	pkgcatalog "github.com/HerbHall/bigoref/pkg/catalog"
)

// loadConfig reads configPath and validates it.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openCatalog loads the embedded catalog requiring the configured languages.
func openCatalog(cfg *config.Config) (*pkgcatalog.Catalog, error) {
	return pkgcatalog.Load(pkgcatalog.WithLanguages(cfg.Languages()...))
}
