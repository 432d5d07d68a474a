package postgres

import "embed"

// MigrationFS incrusta los archivos SQL de internal/infrastructure/postgres/migrations.
// Los usa el runner de migraciones (cmd/migrate).
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
