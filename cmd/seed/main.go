// seed inserta categorías de ejemplo en la base configurada (mismas variables que la API).
//
// Uso: go run ./cmd/seed [nombre ...]
// Sin argumentos inserta el catálogo por defecto.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/infrastructure/postgres"
	"github.com/jhoicas/categorias-api/pkg/config"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

var defaultCategories = []struct {
	name        string
	description string
}{
	{"Movie", "Largometrajes"},
	{"Documentary", "Documentales y series documentales"},
	{"Series", "Series de televisión"},
	{"Anime", ""},
	{"Short", "Cortometrajes"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	categories, err := buildCategories(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("categorías inválidas")
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	db, err := postgres.OpenGorm(pool)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar gorm")
	}

	if err := postgres.NewCategoryRepository(db).BulkInsert(ctx, categories); err != nil {
		log.Error().Err(err).Msg("insertar categorías")
		return
	}
	log.Info().Int("count", len(categories)).Msg("categorías insertadas")
}

// buildCategories crea las entidades a partir de los nombres recibidos o del catálogo por defecto.
func buildCategories(names []string) ([]*entity.Category, error) {
	var out []*entity.Category
	if len(names) == 0 {
		for _, d := range defaultCategories {
			var desc *string
			if d.description != "" {
				desc = &d.description
			}
			c, err := entity.NewCategory(entity.CreateCategoryCommand{Name: d.name, Description: desc})
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	}
	for _, n := range names {
		c, err := entity.NewCategory(entity.CreateCategoryCommand{Name: strings.TrimSpace(n)})
		if err != nil {
			return nil, fmt.Errorf("%q: %w", n, err)
		}
		out = append(out, c)
	}
	return out, nil
}
