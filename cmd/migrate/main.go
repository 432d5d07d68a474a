// migrate aplica las migraciones de esquema sobre PostgreSQL.
//
// Uso: go run ./cmd/migrate [up|down]
// Por defecto aplica "up". Lee la conexión de DATABASE_URL o DB_*.
package main

import (
	"os"

	"github.com/tu-usuario/poms-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/poms-pro/pkg/config"
	"github.com/tu-usuario/poms-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	if err := postgres.Migrate(cfg.DB.ConnectionString(), direction); err != nil {
		log.Fatal().Err(err).Str("direction", direction).Msg("migración fallida")
	}
	log.Info().Str("direction", direction).Msg("migraciones aplicadas")
}
