package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// GetProductHandler handles GET /products/{id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services, log logger.Logger) *GetProductHandler {
	return &GetProductHandler{svc: svc, log: log}
}

// Execute returns one product with its related items.
//
//	@Summary		Get product
//	@Description	Returns a product and the items that belong to it
//	@Tags			products
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	dto.ProductDTO
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, found, err := h.svc.Product.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	if !found {
		h.log.WarnContext(r.Context(), "product not found", "product_id", id)
		httpx.JSONError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.log.InfoContext(r.Context(), "product retrieved", "product_id", id)
	httpx.JSON(w, http.StatusOK, product)
}
