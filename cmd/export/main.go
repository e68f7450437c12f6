package main

import (
	"context"
	"log"

	"github.com/ivanoskov/shop_bot/internal/config"
	"github.com/ivanoskov/shop_bot/internal/logger"
	"github.com/ivanoskov/shop_bot/internal/repository"
	"github.com/ivanoskov/shop_bot/internal/service"
)

// Генерирует web/data.js из categories.json и products.json
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	repo := repository.NewFileRepository(cfg.CategoriesFile(), cfg.ProductsFile())
	exporter := service.NewExporter(cfg.ServerURL, cfg.DataJSFile())
	catalog := service.NewCatalog(repo, exporter)

	logger.Infow("exporting catalog",
		"categories", cfg.CategoriesFile(),
		"products", cfg.ProductsFile(),
		"base_url", cfg.ServerURL,
	)

	if err := catalog.GenerateDataJS(context.Background()); err != nil {
		logger.Fatalw("export failed", "error", err)
	}

	logger.Infow("data.js generated", "path", exporter.Path())
}
