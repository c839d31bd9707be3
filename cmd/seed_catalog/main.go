// seed_catalog carga el catálogo inicial (categorías, subcategorías y productos) desde un JSON
// y opcionalmente asegura una cuenta de administrador.
//
// Uso: go run ./cmd/seed_catalog -file catalog.json [-charset latin1] [-admin-email e -admin-password p]
// Usa la misma configuración que la API (STORAGE_DRIVER, DATABASE_URL, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/catalogseed"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/storage"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	file := flag.String("file", "catalog.json", "ruta del JSON de catálogo (vacío para no cargar catálogo)")
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8 | latin1")
	adminEmail := flag.String("admin-email", "", "email del administrador a crear o promover")
	adminPassword := flag.String("admin-password", "", "password del administrador (mín. 8)")
	adminName := flag.String("admin-name", "Administrador", "nombre del administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).WithComponent("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer repos.Close()

	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("abrir catálogo")
		}
		tree, err := catalogseed.Load(f, *charset)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("leer catálogo")
		}

		proj := usecase.Projection{BaseURL: cfg.Media.BaseURL}
		seeder := catalogseed.NewSeeder(
			usecase.NewCategoryUseCase(repos.Categories, repos.SubCategories, proj),
			usecase.NewSubCategoryUseCase(repos.SubCategories, repos.Products, proj),
			usecase.NewProductUseCase(repos.Products, proj),
			log,
		)
		st, err := seeder.Run(ctx, tree)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo")
		}
		log.Info().
			Int("categories", st.Categories).
			Int("subcategories", st.SubCategories).
			Int("products", st.Products).
			Int("skipped", st.Skipped).
			Msg("catálogo cargado")
	}

	if *adminEmail != "" {
		authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		admin, err := authUC.EnsureAdmin(ctx, *adminEmail, *adminPassword, *adminName)
		if err != nil {
			log.Fatal().Err(err).Msg("asegurar administrador")
		}
		log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("administrador listo")
	}
}
