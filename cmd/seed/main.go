// seed crea datos de demostración: una empresa y sus tres bodegas iniciales.
//
// Uso: go run ./cmd/seed
// Idempotencia simple: si ya existe alguna empresa no hace nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/postgres"
	"github.com/stockflow/stockflow-api/pkg/config"
	"github.com/stockflow/stockflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)

	existing, err := companyRepo.List(1, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar empresas")
	}
	if len(existing) > 0 {
		log.Info().Msg("ya hay datos, nada que sembrar")
		return
	}

	now := time.Now().UTC()
	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      "Demo Retail Co",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(company); err != nil {
		log.Fatal().Err(err).Msg("crear empresa demo")
	}

	warehouses := []struct{ name, location string }{
		{"Main Warehouse", "New York, NY"},
		{"West Coast Warehouse", "Los Angeles, CA"},
		{"East Coast Warehouse", "Boston, MA"},
	}
	for _, w := range warehouses {
		wh := &entity.Warehouse{
			ID:        uuid.NewString(),
			CompanyID: company.ID,
			Name:      w.name,
			Location:  w.location,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := warehouseRepo.Create(wh); err != nil {
			log.Fatal().Err(err).Str("warehouse", w.name).Msg("crear bodega demo")
		}
		log.Info().Str("warehouse", w.name).Msg("bodega creada")
	}

	log.Info().Str("company_id", company.ID).Msg("datos de demostración listos")
}
