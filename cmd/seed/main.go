// seed crea (si no existe) la cuenta SUPER_ADMIN inicial del sistema.
//
// Uso: go run ./cmd/seed
// Credenciales vía SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD y SEED_ADMIN_NAME.
package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/poms-pro/internal/domain/entity"
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

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	email := strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail))
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin existente")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("SUPER_ADMIN ya existe, nada que sembrar")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	now := time.Now().UTC()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         cfg.Seed.AdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear SUPER_ADMIN")
	}

	log.Info().Str("email", email).Str("id", admin.ID).Msg("SUPER_ADMIN creado")
}
