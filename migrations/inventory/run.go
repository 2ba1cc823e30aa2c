package main

import (
	"embed"

	"github.com/sevakart/marketplace/pkg/config"
	"github.com/sevakart/marketplace/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS, migrator.VersionTable("inventory")); err != nil {
		panic(err)
	}
}
