package main

import (
	"context"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/unitedfins/inventory-api/pkg/config"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

// Aplica las migraciones SQL de ./migrations con goose.
// Uso: migrate [-dir migrations] [-command up|down|status]
func main() {
	dir := flag.String("dir", "migrations", "directorio de migraciones SQL")
	command := flag.String("command", "up", "comando goose: up, down, status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := goose.OpenDBWithDriver("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Error().Err(err).Msg("abrir conexión para migraciones")
		os.Exit(1)
	}
	defer db.Close()

	goose.SetTableName("schema_migrations")
	if err := goose.RunContext(context.Background(), *command, db, *dir); err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Str("command", *command).Msg("migraciones aplicadas")
}
