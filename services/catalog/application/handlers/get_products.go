package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services, log logger.Logger) *GetProductsHandler {
	return &GetProductsHandler{svc: svc, log: log}
}

// Execute lists every product.
//
//	@Summary		List products
//	@Description	Returns every product without related items
//	@Tags			products
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.GetAll(r.Context())
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	h.log.InfoContext(r.Context(), "products listed", "count", len(products))
	httpx.JSON(w, http.StatusOK, products)
}
