package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivanoskov/shop_bot/internal/api"
	"github.com/ivanoskov/shop_bot/internal/bot"
	"github.com/ivanoskov/shop_bot/internal/charts"
	"github.com/ivanoskov/shop_bot/internal/config"
	"github.com/ivanoskov/shop_bot/internal/logger"
	"github.com/ivanoskov/shop_bot/internal/repository"
	"github.com/ivanoskov/shop_bot/internal/service"
	"github.com/ivanoskov/shop_bot/internal/storage"
	"golang.org/x/sync/errgroup"
)

const cloudinaryFolder = "smokelab"

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

	repo, err := newRepository(cfg)
	if err != nil {
		logger.Fatalw("failed to init catalog repository", "backend", cfg.CatalogBackend, "error", err)
	}
	catalog := service.NewCatalog(repo, service.NewExporter(cfg.ServerURL, cfg.DataJSFile()))

	store, err := newStore(cfg)
	if err != nil {
		logger.Fatalw("failed to init upload storage", "error", err)
	}
	uploader := storage.NewUploader(store, storage.NewOptimizer(cfg.UploadMaxDimension))

	srv := api.NewServer(cfg, catalog, uploader, charts.NewChartGenerator(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx, srv.Mount())
	})

	if cfg.TelegramToken != "" {
		b, err := bot.NewBot(cfg.TelegramToken, cfg.WebAppURL, logger)
		if err != nil {
			logger.Fatalw("failed to init telegram bot", "error", err)
		}
		g.Go(func() error {
			logger.Infow("bot started", "web_app_url", cfg.WebAppURL)
			return b.Start(ctx)
		})
	} else {
		logger.Warn("BOT_TOKEN is not set, telegram bot is disabled")
	}

	if err := g.Wait(); err != nil {
		logger.Fatalw("stopped with error", "error", err)
	}
	logger.Info("bye")
}

func newRepository(cfg *config.Config) (service.Repository, error) {
	if cfg.CatalogBackend == config.BackendSupabase {
		return repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
	}
	return repository.NewFileRepository(cfg.CategoriesFile(), cfg.ProductsFile()), nil
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.CloudinaryURL != "" {
		return storage.NewCloudinaryStore(cfg.CloudinaryURL, cloudinaryFolder)
	}
	return storage.NewLocalStore(cfg.UploadsDir(), "/uploads")
}
