package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"github.com/ariefcatur/inventory-api/internal/openapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ProductReader is implemented by *inventory.Service.
type ProductReader interface {
	Lookup(ctx context.Context, id string) (catalog.Product, error)
	List(ctx context.Context) ([]catalog.Product, error)
}

type ProductsHandler struct {
	Products ProductReader
	Ready    catalog.Pinger // optional
	Timeout  time.Duration
	Log      *slog.Logger
}

func (h *ProductsHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.listProducts)
	r.Get("/product/{id}", h.getProduct)
	r.Post("/product/{id}", h.getProduct)
	r.Get("/readyz", h.ready)
	r.Get("/openapi.json", h.openapiJSON)
	r.Get("/openapi.yaml", h.openapiYAML)
}

func (h *ProductsHandler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	d := h.Timeout
	if d <= 0 {
		d = 3 * time.Second
	}
	return context.WithTimeout(r.Context(), d)
}

func (h *ProductsHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	ps, err := h.Products.List(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *ProductsHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	p, err := h.Products.Lookup(ctx, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) ready(w http.ResponseWriter, r *http.Request) {
	if h.Ready == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	if err := h.Ready.Ping(ctx); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ProductsHandler) openapiJSON(w http.ResponseWriter, r *http.Request) {
	b, err := openapi.JSON()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func (h *ProductsHandler) openapiYAML(w http.ResponseWriter, r *http.Request) {
	b, err := openapi.YAML()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(b)
}

func (h *ProductsHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, name := statusFor(err)
	if code >= http.StatusInternalServerError && h.Log != nil {
		h.Log.Error("request_failed",
			"path", r.URL.Path,
			"code", name,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
	}
	writeError(w, err)
}
