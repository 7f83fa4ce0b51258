package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopsbuzz/shopsbuzz-backend/api/responses"
	"github.com/shopsbuzz/shopsbuzz-backend/api/validators"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/catalog"
	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/logger"
)

type productView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Page        string `json:"page"`
}

func newProductView(p catalog.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		Image:       p.Image,
		Page:        p.Page,
	}
}

func newProductViews(products []catalog.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}

// CatalogPages lists the storefront page names in display order.
func CatalogPages(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"pages": cat.Pages()})
	}
}

// CatalogList serves one page's product grid with the storefront's filter
// and sort knobs.
func CatalogList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		input := catalog.ListInput{
			Page:     strings.TrimSpace(query.Get("page")),
			Category: strings.TrimSpace(query.Get("category")),
			Sort:     strings.TrimSpace(query.Get("sort")),
		}
		if input.Page == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "page is required"))
			return
		}

		products, err := cat.List(input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": newProductViews(products)})
	}
}

// CatalogDetail serves a single product looked up by page and id.
func CatalogDetail(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := chi.URLParam(r, "page")
		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be numeric"))
			return
		}

		product, err := cat.Find(page, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductView(*product))
	}
}

// CatalogSearch performs the storefront's name-or-category substring search.
// An empty query returns an empty result set rather than an error.
func CatalogSearch(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.SanitizeString(r.URL.Query().Get("q"), 120)
		page := strings.TrimSpace(r.URL.Query().Get("page"))

		products, err := cat.Search(query, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"query":    query,
			"products": newProductViews(products),
		})
	}
}
