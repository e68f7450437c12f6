package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/ivanoskov/shop_bot/internal/repository"
	"github.com/ivanoskov/shop_bot/internal/service"
)

type saveProductsRequest struct {
	Products json.RawMessage `json:"products"`
}

type saveCategoriesRequest struct {
	Categories json.RawMessage `json:"categories"`
}

func (s *Server) getProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.GetProducts(r.Context())
	if err != nil {
		s.internalServerError(w, r, "Cannot read products", err)
		return
	}
	if products == nil {
		products = []model.Record{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) saveProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req saveProductsRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, r, "Invalid JSON body", err)
		return
	}

	var products []model.Record
	if err := decodeArray(req.Products, &products); err != nil {
		s.badRequestResponse(w, r, "products must be array", err)
		return
	}

	if err := s.catalog.ReplaceProducts(r.Context(), products); err != nil {
		s.internalServerError(w, r, "Cannot write products", err)
		return
	}

	s.log.Infow("products saved", "count", len(products))
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.GetCategories(r.Context())
	if err != nil {
		s.internalServerError(w, r, "Cannot read categories", err)
		return
	}
	if categories == nil {
		categories = []model.Record{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) saveCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var req saveCategoriesRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, r, "Invalid JSON body", err)
		return
	}

	var categories []model.Record
	if err := decodeArray(req.Categories, &categories); err != nil {
		s.badRequestResponse(w, r, "categories must be array", err)
		return
	}

	if err := s.catalog.ReplaceCategories(r.Context(), categories); err != nil {
		s.internalServerError(w, r, "Cannot write categories", err)
		return
	}

	s.log.Infow("categories saved", "count", len(categories))
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// decodeArray принимает любой JSON-массив, элементы не проверяются.
// null, объекты и прочие значения отклоняются.
func decodeArray(raw json.RawMessage, v any) error {
	if !repository.IsJSONArray(raw) {
		return repository.ErrNotArray
	}
	return json.Unmarshal(raw, v)
}

func (s *Server) catalogChartHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.GetCategoryStats(r.Context())
	if errors.Is(err, service.ErrNoCategories) {
		s.notFoundResponse(w, r, "No categories")
		return
	}
	if err != nil {
		s.internalServerError(w, r, "Cannot read catalog", err)
		return
	}

	png, err := s.charts.GenerateCategoryPieChart(stats)
	if err != nil {
		s.internalServerError(w, r, "Cannot render chart", err)
		return
	}
	if png == nil {
		s.notFoundResponse(w, r, "No products")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
