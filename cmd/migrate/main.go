package main

import (
	"log"
	"os"

	"github.com/ivanoskov/shop_bot/internal/config"
	"github.com/ivanoskov/shop_bot/internal/logger"
	"github.com/ivanoskov/shop_bot/internal/repository"
	"github.com/ivanoskov/shop_bot/internal/service"
)

// Одноразовый переход products.json со строкового category на categoryId.
// Пишет categories.json и products.json только после успешного разбора всех товаров.
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

	productsPath := cfg.ProductsFile()
	categoriesPath := cfg.CategoriesFile()

	data, err := os.ReadFile(productsPath)
	if err != nil {
		logger.Fatalw("cannot read products", "path", productsPath, "error", err)
	}

	items, err := service.ParseLegacyProducts(data)
	if err != nil {
		logger.Fatalw("products file is not a valid product array", "path", productsPath, "error", err)
	}

	migration := service.MigrateProducts(items)
	if migration == nil {
		logger.Infow("products already use categoryId, nothing to migrate", "path", productsPath)
		return
	}

	logger.Infow("categories found", "count", len(migration.Categories))
	for _, c := range migration.Categories {
		logger.Infof("  %d. %s", c.ID, c.Name)
	}

	if err := repository.WriteJSON(categoriesPath, migration.Categories); err != nil {
		logger.Fatalw("cannot write categories", "path", categoriesPath, "error", err)
	}
	if err := repository.WriteJSON(productsPath, migration.Products); err != nil {
		logger.Fatalw("cannot write products", "path", productsPath, "error", err)
	}

	logger.Infow("migration finished",
		"categories", categoriesPath,
		"products", productsPath,
		"migrated", len(migration.Products),
	)
	logger.Info("next steps: set category images in the admin panel, then regenerate data.js (go run ./cmd/export)")
}
