package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/categorias-api/docs"
	"github.com/jhoicas/categorias-api/internal/application/category"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/infrastructure/memory"
	"github.com/jhoicas/categorias-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/categorias-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/categorias-api/internal/interfaces/http"
	"github.com/jhoicas/categorias-api/pkg/config"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("repository", cfg.Repository.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var categoryRepo repository.CategoryRepository
	switch cfg.Repository.Driver {
	case config.RepositoryMemory:
		categoryRepo = memory.NewCategoryRepository()
	default:
		if cfg.DB.AutoMigrate {
			if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		db, err := postgres.OpenGorm(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar gorm")
		}
		categoryRepo = postgres.NewCategoryRepository(db)
	}

	// Caché de lecturas por ID, solo si REDIS_ADDR está definido.
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer client.Close()
		categoryRepo = infraredis.NewCachedCategoryRepository(categoryRepo, client, cfg.Redis.TTL, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httpRouter.Middlewares(app, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else if cfg.App.SwaggerFile != "" {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("archivo swagger no encontrado, UI deshabilitada")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo),
		GetCategory:    category.NewGetCategoryUseCase(categoryRepo),
		UpdateCategory: category.NewUpdateCategoryUseCase(categoryRepo),
		DeleteCategory: category.NewDeleteCategoryUseCase(categoryRepo),
		ListCategories: category.NewListCategoriesUseCase(categoryRepo),
		Logger:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
