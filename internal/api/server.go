package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ivanoskov/shop_bot/internal/charts"
	"github.com/ivanoskov/shop_bot/internal/config"
	"github.com/ivanoskov/shop_bot/internal/service"
	"github.com/ivanoskov/shop_bot/internal/storage"
	"go.uber.org/zap"
)

// Server HTTP API и раздача статики для админки и Mini App
type Server struct {
	cfg      *config.Config
	catalog  *service.Catalog
	uploader *storage.Uploader
	charts   *charts.ChartGenerator
	log      *zap.SugaredLogger
}

func NewServer(cfg *config.Config, catalog *service.Catalog, uploader *storage.Uploader, chartGenerator *charts.ChartGenerator, log *zap.SugaredLogger) *Server {
	return &Server{
		cfg:      cfg,
		catalog:  catalog,
		uploader: uploader,
		charts:   chartGenerator,
		log:      log,
	}
}

func (s *Server) Mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.healthCheckHandler)

		r.Get("/products", s.getProductsHandler)
		r.Get("/categories", s.getCategoriesHandler)
		r.Get("/catalog/chart.png", s.catalogChartHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.adminAuth)
			r.Post("/products", s.saveProductsHandler)
			r.Post("/categories", s.saveCategoriesHandler)
			r.Post("/upload-image", s.uploadImageHandler)
			r.Post("/generate-datajs", s.generateDataJSHandler)
		})
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.cfg.UploadsDir()))))

	r.Get("/admin", http.RedirectHandler("/admin/", http.StatusMovedPermanently).ServeHTTP)
	r.Handle("/admin/*", adminFileServer(s.cfg.AdminDir()))

	if _, err := os.Stat(s.cfg.WebDir()); err == nil {
		r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(s.cfg.WebDir()))))
		s.log.Infof("Mini App is served at %s", s.cfg.WebAppURL)
	} else {
		s.log.Warnf("web directory %s not found, create it and put index.html and data.js there", s.cfg.WebDir())
	}

	return r
}

// Run слушает порт до отмены ctx, затем корректно останавливает сервер
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      handler,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 30,
		IdleTimeout:  time.Minute,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.log.Infow("shutting down server", "addr", srv.Addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.log.Infow("HTTP API and admin panel started", "addr", srv.Addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	s.log.Infow("server has stopped", "addr", srv.Addr)
	return nil
}

func (s *Server) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
