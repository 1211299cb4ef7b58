// seed siembra los datos de demostración en un almacén local vacío
// (un productor, un consumidor y dos productos de muestra).
//
// Uso: go run ./cmd/seed [ruta/al/almacen.db]
// Sin argumento usa STORE_PATH de la configuración. Sobre un almacén no
// vacío no hace nada.
package main

import (
	"os"

	"github.com/jhoicas/agromercado-api/internal/application/usecase"
	"github.com/jhoicas/agromercado-api/internal/infrastructure/localstore"
	"github.com/jhoicas/agromercado-api/pkg/config"
	"github.com/jhoicas/agromercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	path := cfg.Store.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := localstore.Open(path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	seedUC := usecase.NewSeedUseCase(
		localstore.NewUserRepository(store),
		localstore.NewProductRepository(store),
	)
	if err := seedUC.SeedIfEmpty(); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demostración")
	}
	log.Info().Str("store", path).Msg("almacén listo")
}
